/*
Package windows1258 encodes Vietnamese text to and from windows-1258.

windows-1258 represents only a few tone-marked letters in precomposed form.
All other letters have to be written as a base letter followed by a
combining tone mark. The encoder of this package brings text into
Normalization Form C, detaches the tone marks that have no precomposed form
and then encodes with the windows-1258 code page of golang.org/x/text. The
decoder recombines tone marks, so decoding yields precomposed text again.

Example usage:

	b, err := windows1258.Encode("Tiếng Việt")
	...
	s, err := windows1258.Decode(b) // "Tiếng Việt"
*/
package windows1258

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vntone"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'vntone.windows1258'
func tracer() tracing.Trace {
	return tracing.Select("vntone.windows1258")
}

type vietnamese struct{}

// Encoding is windows-1258 with tone marks detached as needed on encoding and
// recombined on decoding.
var Encoding encoding.Encoding = vietnamese{}

func (vietnamese) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: transform.Chain(
		norm.NFC,
		vntone.NewTransformer(false),
		charmap.Windows1258.NewEncoder(),
	)}
}

func (vietnamese) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: transform.Chain(
		charmap.Windows1258.NewDecoder(),
		norm.NFC,
	)}
}

func (vietnamese) String() string {
	return "windows-1258 (Vietnamese)"
}

// Encode encodes s to windows-1258. It fails if s contains characters
// windows-1258 cannot represent, even after decomposition.
func Encode(s string) ([]byte, error) {
	b, err := Encoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		tracer().Errorf("cannot encode %q: %v", s, err)
		return nil, fmt.Errorf("windows-1258: encoding: %w", err)
	}
	return b, nil
}

// Decode decodes windows-1258 encoded bytes into a string in Normalization
// Form C.
func Decode(b []byte) (string, error) {
	s, err := Encoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("windows-1258: decoding: %w", err)
	}
	return string(s), nil
}

// Encodable reports whether s can be encoded to windows-1258.
func Encodable(s string) bool {
	_, err := Encoding.NewEncoder().String(s)
	return err == nil
}

// NewWriter returns a writer that encodes UTF-8 text written to it and writes
// windows-1258 to w. The returned writer must be closed to flush buffered
// output.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, Encoding.NewEncoder())
}

// NewReader returns a reader that decodes windows-1258 read from r.
func NewReader(r io.Reader) io.Reader {
	return Encoding.NewDecoder().Reader(r)
}
