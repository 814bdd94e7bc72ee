package theory

import (
	"slices"
	"strconv"
	"strings"
)

var intervalNames = [12]string{
	"P1 (unison)",
	"m2 (minor 2nd)",
	"M2 (major 2nd)",
	"m3 (minor 3rd)",
	"M3 (major 3rd)",
	"P4 (perfect 4th)",
	"TT (tritone)",
	"P5 (perfect 5th)",
	"m6 (minor 6th)",
	"M6 (major 6th)",
	"m7 (minor 7th)",
	"M7 (major 7th)",
}

// UnknownChord is reported when the interval pattern is not in the chord table.
const UnknownChord = "Unknown chord type"

// chordTypes is keyed by the sorted semitone offsets of the non-root notes,
// reduced mod 12 and joined with commas.
var chordTypes = map[string]string{
	"4,7":    "Major triad",
	"3,7":    "Minor triad",
	"3,6":    "Diminished triad",
	"4,8":    "Augmented triad",
	"2,7":    "Sus2",
	"5,7":    "Sus4",
	"4,7,11": "Major 7th",
	"4,7,10": "Dominant 7th",
	"3,7,10": "Minor 7th",
	"3,6,10": "Half-diminished 7th",
	"3,6,9":  "Diminished 7th",
	"3,7,11": "Minor-major 7th",
	"4,7,9":  "Major 6th",
	"3,7,9":  "Minor 6th",
}

// IntervalName names a semitone distance, ignoring direction and octaves.
func IntervalName(semitones int) string {
	n := semitones
	if n < 0 {
		n = -n
	}
	return intervalNames[n%12]
}

// Interval is the distance between two pitches.
type Interval struct {
	From      Pitch
	To        Pitch
	Semitones int
	Name      string
}

func newInterval(from, to Pitch) Interval {
	n := from.IntervalTo(to)
	return Interval{From: from, To: to, Semitones: n, Name: IntervalName(n)}
}

// Report is the analysis of a pitch sequence.
type Report struct {
	// Sorted holds the input ordered by MIDI number; Sorted[0] is the root.
	Sorted []Pitch
	// FromRoot measures every other pitch against the root.
	FromRoot []Interval
	// Consecutive measures each adjacent pair of Sorted.
	Consecutive []Interval
	// Chord is set for three or more pitches.
	Chord string
}

// Empty reports whether there was nothing to analyze.
func (r Report) Empty() bool {
	return len(r.Sorted) == 0
}

// Analyze sorts notes by MIDI number and derives root-relative intervals,
// consecutive intervals and, for three or more notes, the chord type.
// Duplicate pitches are kept and measured like any other note.
func Analyze(notes []Pitch) Report {
	if len(notes) == 0 {
		return Report{}
	}

	sorted := SortByMIDI(notes)
	r := Report{Sorted: sorted}

	root := sorted[0]
	for _, p := range sorted[1:] {
		r.FromRoot = append(r.FromRoot, newInterval(root, p))
	}
	for i := 0; i+1 < len(sorted); i++ {
		r.Consecutive = append(r.Consecutive, newInterval(sorted[i], sorted[i+1]))
	}
	if len(sorted) >= 3 {
		r.Chord = ChordType(sorted)
	}
	return r
}

// ChordType classifies a sequence already sorted by MIDI number. Only three-
// and four-note patterns are in the table; anything else is UnknownChord.
func ChordType(sorted []Pitch) string {
	if len(sorted) < 3 || len(sorted) > 4 {
		return UnknownChord
	}
	offsets := make([]int, 0, len(sorted)-1)
	for _, p := range sorted[1:] {
		offsets = append(offsets, mod(sorted[0].IntervalTo(p), 12))
	}
	slices.Sort(offsets)

	if name, ok := chordTypes[chordKey(offsets)]; ok {
		return name
	}
	return UnknownChord
}

func chordKey(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ",")
}

// SortByMIDI returns a copy of notes ordered by MIDI number. Notes with the
// same MIDI number keep their input order.
func SortByMIDI(notes []Pitch) []Pitch {
	out := clone(notes)
	slices.SortStableFunc(out, func(a, b Pitch) int {
		return a.MIDI() - b.MIDI()
	})
	return out
}
