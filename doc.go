/*
Package maxmatch splits unsegmented text into dictionary words by forward
maximum matching.

Languages like Chinese do not separate words by spaces. Given a dictionary
of known words, the tokenizer walks the input code point by code point and,
at every start position, extends the candidate substring one code point at a
time, looking each candidate up in the dictionary. It remembers the longest
hit and the first (shortest) hit. Probing a start position stops after four
consecutive misses, as no longer word is expected beyond that point.
Non-overlapping longest hits become tokens; code points not covered by any
hit are emitted according to a Fallback policy. Concatenating the tokens
always yields the input.

	dict, _ := maxmatch.NewDictionary("demo", cascade.DefaultConfig())
	dict.Add("提高", "raise")
	dict.Add("人民", "people")
	dict.Add("生活", "life")
	dict.Add("水平", "level")
	dict.Segment("提高人民生活水平") // => [提高 人民 生活 水平]

Words are stored in a cascading multi-layer hash table (package cascade).
Dictionaries are built once, frozen, and then shared read-only.

File format parsing is outside this package. Use package plaintext to load
dictionaries and corpora from text files.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package maxmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maxmatch'
func tracer() tracing.Trace {
	return tracing.Select("maxmatch")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
