package vntone

import (
	"slices"
)

// The five combining tone marks of Vietnamese.
const (
	Grave     = '\u0300'
	Acute     = '\u0301'
	Tilde     = '\u0303'
	HookAbove = '\u0309'
	DotBelow  = '\u0323'
)

func init() {
	assert(slices.IsSorted(tones.windows1258Key[:]), "windows-1258 keys must be sorted")
	assert(slices.IsSorted(tones.middleKey[:]), "middle keys must be sorted")
	for i := range tones.extension {
		base, tone := unpackExtension(tones.extension[i])
		assert(base != 0 && IsToneMark(tone), "corrupt extension entry")
	}
	for i := range tones.middleValue {
		base, tone := unpackMiddle(tones.middleValue[i])
		assert(base != 0 && IsToneMark(tone), "corrupt middle entry")
	}
	for i := range tones.windows1258Value {
		base, tone := unpackWindows1258(tones.windows1258Value[i])
		assert(base != 0 && (tone == Grave || tone == Acute), "corrupt windows-1258 entry")
	}
}

// IsToneMark reports whether r is one of the five combining Vietnamese tone
// marks.
func IsToneMark(r rune) bool {
	switch r {
	case Grave, Acute, Tilde, HookAbove, DotBelow:
		return true
	}
	return false
}

// Decompose splits a composed letter c into its base letter and its tone mark.
// If ok is false, c has no decomposition in the requested mode and should be
// used as is.
//
// Letters in the range U+1EA0…U+1EF9 and the few others without a
// precomposed form in windows-1258 are always decomposed. Letters that
// windows-1258 can represent directly ('á', 'è', …) are decomposed only if
// orthographic is true.
func Decompose(c rune, orthographic bool) (base, tone rune, ok bool) {
	if off := uint(c) - extensionFirst; off < uint(len(tones.extension)) {
		base, tone = unpackExtension(tones.extension[off])
		return base, tone, true
	}
	if c >= middleFirst && c <= middleLast {
		if i, found := slices.BinarySearch(tones.middleKey[:], uint8(c-middleFirst)); found {
			base, tone = unpackMiddle(tones.middleValue[i])
			return base, tone, true
		}
	}
	if orthographic && c >= windows1258First && c <= windows1258Last {
		if i, found := slices.BinarySearch(tones.windows1258Key[:], uint8(c)); found {
			base, tone = unpackWindows1258(tones.windows1258Value[i])
			return base, tone, true
		}
	}
	return c, 0, false
}

func unpackExtension(v uint16) (base, tone rune) {
	return rune(v & 0x3FF), rune(v>>10) + toneOffset
}

func unpackMiddle(v uint8) (base, tone rune) {
	base = rune(v & 0x7F)
	switch {
	case v&0x5F == 'Y': // Ý and ý carry an acute and ignore the upper bit
		tone = Acute
	case v>>7 == 0:
		tone = Grave
	default:
		tone = Tilde
	}
	return
}

func unpackWindows1258(v uint8) (base, tone rune) {
	return rune(v & 0x7F), rune(v>>7) + toneOffset
}
