package vntone

import "sync"

type tonePair struct {
	base, tone rune
}

var composition struct {
	once  sync.Once
	index map[tonePair]rune
}

// Compose is the inverse of [Decompose] in orthographic mode: it returns the
// precomposed letter for base followed by tone. ok is false if there is no
// such letter in the tables.
//
// Compose may be used to turn text typed with the Vietnamese keyboard layout
// back into precomposed form for the letters covered by this package.
func Compose(base, tone rune) (rune, bool) {
	if !IsToneMark(tone) {
		return 0, false
	}
	composition.once.Do(buildCompositionIndex)
	c, ok := composition.index[tonePair{base, tone}]
	return c, ok
}

func buildCompositionIndex() {
	stats := Tables()
	index := make(map[tonePair]rune, stats.Total())
	for i, v := range tones.extension {
		base, tone := unpackExtension(v)
		index[tonePair{base, tone}] = rune(extensionFirst + i)
	}
	for i, k := range tones.middleKey {
		base, tone := unpackMiddle(tones.middleValue[i])
		index[tonePair{base, tone}] = rune(k) + middleFirst
	}
	for i, k := range tones.windows1258Key {
		base, tone := unpackWindows1258(tones.windows1258Value[i])
		index[tonePair{base, tone}] = rune(k)
	}
	assert(len(index) == stats.Total(), "decomposition tables overlap")
	tracer().Debugf("composition index built with %d entries", len(index))
	composition.index = index
}
