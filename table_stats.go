package vntone

import "unsafe"

// TableStats reports the size of the decomposition tables.
type TableStats struct {
	Windows1258 int // entries decomposed in orthographic mode only
	Middle      int // entries below U+1EA0 without a windows-1258 form
	Extension   int // entries in U+1EA0…U+1EF9
	Bytes       int // static storage of all tables
}

// Total returns the number of composed letters known to the tables.
func (s TableStats) Total() int {
	return s.Windows1258 + s.Middle + s.Extension
}

// Tables returns statistics about the decomposition tables.
func Tables() TableStats {
	return TableStats{
		Windows1258: len(tones.windows1258Key),
		Middle:      len(tones.middleKey),
		Extension:   len(tones.extension),
		Bytes:       int(unsafe.Sizeof(tones)),
	}
}
