package vntone

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Decomposer is an adapter over a source of runes in Normalization Form C,
// yielding runes with tone marks detached.
//
// A Decomposer holds at most one rune of pending output: after splitting a
// letter it returns the base letter and keeps the tone mark for the next call.
// It is not safe for concurrent use.
type Decomposer struct {
	src          io.RuneReader
	pending      rune  // tone mark to emit next, 0 if none
	err          error // sticky terminal condition
	orthographic bool
}

// NewDecomposer creates a decomposer reading from src. See [Decompose] for the
// meaning of orthographic.
func NewDecomposer(src io.RuneReader, orthographic bool) *Decomposer {
	return &Decomposer{
		src:          src,
		orthographic: orthographic,
	}
}

// Reset discards any pending output and makes d read from src.
func (d *Decomposer) Reset(src io.RuneReader) {
	d.src = src
	d.pending = 0
	d.err = nil
}

// Next returns the next output rune. It returns false once the source is
// exhausted or has failed, and keeps returning false on every subsequent call.
// Use [Decomposer.Err] to tell the two apart.
func (d *Decomposer) Next() (rune, bool) {
	if d.pending != 0 {
		r := d.pending
		d.pending = 0
		return r, true
	}
	if d.err != nil {
		return 0, false
	}
	if d.src == nil {
		d.err = io.EOF
		return 0, false
	}
	c, _, err := d.src.ReadRune()
	if err != nil {
		if err != io.EOF {
			tracer().Errorf("reading rune source: %v", err)
		}
		d.err = err
		return 0, false
	}
	if base, tone, ok := Decompose(c, d.orthographic); ok {
		d.pending = tone
		return base, true
	}
	return c, true
}

// ReadRune implements [io.RuneReader]. size is the UTF-8 length of r.
// At the end of input err is io.EOF.
func (d *Decomposer) ReadRune() (r rune, size int, err error) {
	r, ok := d.Next()
	if !ok {
		return 0, 0, d.err
	}
	return r, utf8.RuneLen(r), nil
}

// Err returns the first error other than io.EOF encountered while reading
// the source.
func (d *Decomposer) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// Runes returns an iterator over seq with tone marks detached.
func Runes(seq iter.Seq[rune], orthographic bool) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := range seq {
			base, tone, ok := Decompose(c, orthographic)
			if !yield(base) {
				return
			}
			if ok && !yield(tone) {
				return
			}
		}
	}
}

// String returns s with tone marks detached. Invalid UTF-8 bytes are copied
// unchanged.
//
// Example (orthographic):
//
//	"Việt" => "Viê\u0323t".
func String(s string, orthographic bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += size
		base, tone, ok := Decompose(c, orthographic)
		b.WriteRune(base)
		if ok {
			b.WriteRune(tone)
		}
	}
	return b.String()
}
