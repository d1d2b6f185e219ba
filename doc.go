/*
Package vntone detaches Vietnamese tone marks from precomposed letters.

Input is expected to be in Unicode Normalization Form C; this precondition is
not checked. Output is a sequence of runes where selected letters are split
into a base letter followed by one combining tone mark (grave, hook above,
tilde, acute or dot below). Circumflex, breve and horn are never detached.
Note that the output is not in Normalization Form D or any other
normalization form.

There are two modes of operation:

  - non-orthographic: only tone marks that have no precomposed form in
    windows-1258 are detached. 'á' stays as it is, 'ý' becomes 'y' + U+0301,
    'ấ' becomes 'â' + U+0301.
  - orthographic: all tone marks are detached, even from 'á'. The result looks
    like text typed on the (non-IME) Vietnamese keyboard layout.

The core is [Decomposer], a pull-based adapter over an [io.RuneReader].
[Runes] and [String] cover iterators and strings, [NewTransformer] operates on
UTF-8 bytes with golang.org/x/text/transform. Package windows1258 builds a
full text encoding on top of it.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package vntone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vntone'
func tracer() tracing.Trace {
	return tracing.Select("vntone")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
