package theory

import (
	"strconv"
	"strings"
)

// noteNames maps upper-cased spellings to pitch classes. Sharps may be written
// with '#' or 'S'.
var noteNames = map[string]int{
	"C": 0, "C#": 1, "CS": 1,
	"D": 2, "D#": 3, "DS": 3,
	"E": 4,
	"F": 5, "F#": 6, "FS": 6,
	"G": 7, "G#": 8, "GS": 8,
	"A": 9, "A#": 10, "AS": 10,
	"B": 11,
}

// DefaultOctave is used when a note token carries no octave.
const DefaultOctave = 4

// octaves spanned by MIDI 0..127
const (
	minOctave = -1
	maxOctave = 9
)

// Parse reads a note token such as "C4", "c#4", "CS4", "A-1", "C4+25" or
// "E5-14". It returns false when the token is not a note, including notes
// outside the MIDI range.
func Parse(token string) (Pitch, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Pitch{}, false
	}

	base, cents, hasCents := splitCents(s)

	notePart, octavePart := splitOctave(base)
	pitchClass, known := noteNames[strings.ToUpper(notePart)]
	if !known {
		return Pitch{}, false
	}

	octave := DefaultOctave
	if octavePart != "" {
		n, err := strconv.Atoi(octavePart)
		if err != nil || n < minOctave || n > maxOctave {
			return Pitch{}, false
		}
		octave = n
	}

	p := New(pitchClass, octave)
	if midi := p.MIDI(); midi < MinMIDI || midi > MaxMIDI {
		return Pitch{}, false
	}
	if hasCents {
		p.Cents = clampCents(cents)
	}
	return p, true
}

// splitCents separates an optional cents suffix. A '+' always starts the
// suffix; a '-' does so only when it follows a digit and is followed by
// nothing but digits and dots, so "C-1" keeps its negative octave while
// "C4-14" carries -14 cents. A suffix whose number does not parse is
// dropped: "C4+x" reads as plain C4.
func splitCents(s string) (base string, cents float64, hasCents bool) {
	if i := strings.IndexByte(s, '+'); i >= 0 {
		c, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil {
			return s[:i], 0, false
		}
		return s[:i], c, true
	}

	if i := strings.LastIndexByte(s, '-'); i > 0 && isDigit(rune(s[i-1])) && isDecimal(s[i+1:]) {
		c, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil {
			return s[:i], 0, false
		}
		return s[:i], -c, true
	}

	return s, 0, false
}

func isDecimal(s string) bool {
	for _, r := range s {
		if !isDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

// splitOctave splits "C#-1" into "C#" and "-1". Without trailing digits the
// octave part is empty.
func splitOctave(base string) (note, octave string) {
	end := len(base)
	start := end
	for start > 0 && isDigit(rune(base[start-1])) {
		start--
	}
	if start == end {
		return base, ""
	}
	if start > 1 && base[start-1] == '-' {
		start--
	}
	return base[:start], base[start:]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsTransform reports whether token starts a transformation rather than being
// a stray word. It does not validate the numeric payload: "+abc" is a
// transformation that will leave its input unchanged.
func IsTransform(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return false
	}
	switch t {
	case "inv", "reverse", "spread", "just":
		return true
	}
	if strings.HasPrefix(t, "edo") {
		return true
	}
	switch t[0] {
	case '+', '-', '*':
		return true
	}
	_, isCents := parseCentsToken(t)
	return isCents
}
