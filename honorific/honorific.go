// Package honorific splits participant name lines into an honorific
// prefix and the remaining person name.
//
// The lexicon covers the title forms that appear in multilingual
// participant lists (English, French, Spanish, and formal diplomatic
// styles such as "H.E. Mr."). Matching is anchored at the start of the
// line and takes the first lexicon entry that fits, so the entry order
// is part of the package's behavior.
package honorific

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// trail describes what must follow a fragment's literal text for the
// fragment to match
type trail int

const (
	// trailNone requires nothing after the literal
	trailNone trail = iota

	// trailSpace requires exactly one space, which the match consumes
	trailSpace

	// trailOptWS consumes any run of whitespace, possibly empty
	trailOptWS
)

// fragment is one lexicon entry. Fragments with subs accept an optional
// dotted sub-title: after the literal, a "." plus optional whitespace plus
// the first matching sub extends the match. When no sub fits, the bare
// literal still matches on its own.
type fragment struct {
	lit   string
	trail trail
	subs  []fragment
}

// lexicon lists the recognized honorific prefixes. Order matters:
// matching takes the first fragment that fits, not the longest, so the
// dotted and spaced variants of one title are separate entries.
var lexicon = []fragment{
	{lit: "Mr.", trail: trailOptWS},
	{lit: "H.R.H.", trail: trailOptWS},
	{lit: "Mx.", trail: trailOptWS},
	{lit: "St.", trail: trailNone},
	{lit: "Miss", trail: trailSpace},
	{lit: "Mlle", trail: trailSpace},
	{lit: "Mine", trail: trailSpace},
	{lit: "H.H.", trail: trailOptWS},
	{lit: "Ind.", trail: trailOptWS},
	{lit: "His", trail: trailSpace},
	{lit: "Ind", trail: trailSpace},
	{lit: "Ms", trail: trailSpace},
	{lit: "Mr", trail: trailSpace},
	{lit: "Sra", trail: trailSpace},
	{lit: "Sr", trail: trailSpace},
	{lit: "M", trail: trailSpace},
	{lit: "On", trail: trailSpace},
	{lit: "M", trail: trailSpace},
	{lit: "Fr", trail: trailSpace},
	{lit: "H.O.", trail: trailOptWS},
	{lit: "Rev", trail: trailSpace},
	{lit: "Mme", trail: trailSpace},
	{lit: "Sr", trail: trailSpace},
	{lit: "Msgr", trail: trailSpace},
	{lit: "On.", trail: trailOptWS},
	{lit: "Fr.", trail: trailOptWS},
	{lit: "Rev.", trail: trailOptWS},
	{lit: "H.E", subs: []fragment{
		{lit: "Ms.", trail: trailOptWS},
		{lit: "Mr.", trail: trailOptWS},
		{lit: "Ms", trail: trailSpace},
		{lit: "Mr", trail: trailSpace},
		{lit: "Sra", trail: trailSpace},
		{lit: "Sr", trail: trailSpace},
		{lit: "Sra.", trail: trailOptWS},
		{lit: "Mme", trail: trailNone},
		{lit: "Sr.", trail: trailOptWS},
		{lit: "Msgr.", trail: trailOptWS},
	}},
	{lit: "Msgr.", trail: trailOptWS},
	{lit: "Mrs.", trail: trailOptWS},
	{lit: "Sra.", trail: trailOptWS},
	{lit: "Sr.", trail: trailOptWS},
	{lit: "Ms.", trail: trailOptWS},
	{lit: "Dr.", trail: trailOptWS},
	{lit: "Prof.", trail: trailOptWS},
	{lit: "M.", trail: trailOptWS},
	{lit: "Mme", trail: trailNone},
	{lit: "Ms", trail: trailNone},
	{lit: "S.E", subs: []fragment{
		{lit: "Ms.", trail: trailOptWS},
		{lit: "Mr.", trail: trailOptWS},
		{lit: "Mme", trail: trailNone},
		{lit: "Mr", trail: trailNone},
		{lit: "Ms", trail: trailNone},
		{lit: "Dr", trail: trailNone},
		{lit: "Msgr.", trail: trailOptWS},
		{lit: "M.", trail: trailOptWS},
		{lit: "Ms", trail: trailSpace},
		{lit: "Mr", trail: trailSpace},
		{lit: "Sra", trail: trailSpace},
		{lit: "Sr", trail: trailSpace},
		{lit: "M", trail: trailSpace},
		{lit: "Sra.", trail: trailOptWS},
		{lit: "Sr.", trail: trailOptWS},
	}},
}

// Match splits a name line into its honorific prefix and the remaining
// person name. Matching is anchored at the start of the trimmed line and
// both returned strings are trimmed. Lines with no recognized prefix
// return ("", line).
func Match(line string) (honorific, person string) {
	s := strings.TrimSpace(line)
	for _, f := range lexicon {
		if n := f.match(s); n > 0 {
			return strings.TrimSpace(s[:n]), strings.TrimSpace(s[n:])
		}
	}
	return "", s
}

// match returns the number of bytes of s the fragment consumes, or 0 when
// the fragment does not match at the start of s.
func (f fragment) match(s string) int {
	if !strings.HasPrefix(s, f.lit) {
		return 0
	}
	n := len(f.lit)

	if len(f.subs) > 0 {
		if n < len(s) && s[n] == '.' {
			m := n + 1
			m += leadingWhitespace(s[m:])
			for _, sub := range f.subs {
				if k := sub.match(s[m:]); k > 0 {
					return m + k
				}
			}
		}
		// No usable sub-title; the bare literal matches alone
		return n
	}

	switch f.trail {
	case trailSpace:
		if n < len(s) && s[n] == ' ' {
			return n + 1
		}
		return 0
	case trailOptWS:
		return n + leadingWhitespace(s[n:])
	}
	return n
}

// leadingWhitespace returns the length in bytes of the whitespace run at
// the start of s
func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}
