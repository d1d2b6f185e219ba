package vntone

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// toneTransformer detaches tone marks from UTF-8 encoded text. A base letter
// and its tone mark are always written together, so there is no state to
// carry between calls.
type toneTransformer struct {
	transform.NopResetter
	orthographic bool
}

// NewTransformer returns a transformer with the semantics of [Decomposer],
// operating on UTF-8 bytes. Invalid UTF-8 is copied unchanged.
func NewTransformer(orthographic bool) transform.Transformer {
	return toneTransformer{orthographic: orthographic}
}

// NewNFCTransformer is like [NewTransformer], but first brings the input into
// Normalization Form C.
func NewNFCTransformer(orthographic bool) transform.Transformer {
	return transform.Chain(norm.NFC, NewTransformer(orthographic))
}

func (t toneTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf { // ASCII never decomposes
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])
		base, tone, ok := Decompose(c, t.orthographic)
		if !ok { // includes invalid UTF-8, which is copied byte by byte
			if size > len(dst)-nDst {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		if utf8.RuneLen(base)+utf8.RuneLen(tone) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], base)
		nDst += utf8.EncodeRune(dst[nDst:], tone)
		nSrc += size
	}
	return nDst, nSrc, nil
}
