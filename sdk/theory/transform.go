package theory

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies a transformation.
type Kind int

const (
	KindNone Kind = iota
	KindTranspose
	KindCents
	KindMultiply
	KindInvert
	KindReverse
	KindSpread
	KindJust
	KindEDO
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	KindTranspose: "transpose",
	KindCents:     "cents",
	KindMultiply:  "multiply",
	KindInvert:    "inv",
	KindReverse:   "reverse",
	KindSpread:    "spread",
	KindJust:      "just",
	KindEDO:       "edo",
}

func (k Kind) String() string {
	return kindNames[k]
}

// JustRatios are the frequency ratios of the just major scale, in scale order.
var JustRatios = [7]float64{1, 9.0 / 8, 5.0 / 4, 4.0 / 3, 3.0 / 2, 5.0 / 3, 15.0 / 8}

// Transformation is a parsed transformation token.
type Transformation struct {
	Kind      Kind
	Semitones int     // KindTranspose
	Cents     float64 // KindCents
	Ratio     float64 // KindMultiply
	Divisions int     // KindEDO
}

// ParseTransformation reads a transformation token. The forms are tried in
// order and the first whose literal shape and numeric payload both match
// wins:
//
//	+<int>  -<int>  *<float>  <float>c  <float>ct  inv  reverse  spread  just  edo<int>
//
// Anything else yields false.
func ParseTransformation(token string) (Transformation, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return Transformation{}, false
	}

	if rest, found := strings.CutPrefix(t, "+"); found {
		if n, ok := parseSemitones(rest); ok {
			return Transformation{Kind: KindTranspose, Semitones: n}, true
		}
	}
	if rest, found := strings.CutPrefix(t, "-"); found {
		if n, ok := parseSemitones(rest); ok {
			return Transformation{Kind: KindTranspose, Semitones: -n}, true
		}
	}
	if rest, found := strings.CutPrefix(t, "*"); found {
		if r, err := strconv.ParseFloat(rest, 64); err == nil && r > 0 && !math.IsInf(r, 0) {
			return Transformation{Kind: KindMultiply, Ratio: r}, true
		}
	}
	if c, ok := parseCentsToken(t); ok {
		return Transformation{Kind: KindCents, Cents: c}, true
	}

	switch t {
	case "inv":
		return Transformation{Kind: KindInvert}, true
	case "reverse":
		return Transformation{Kind: KindReverse}, true
	case "spread":
		return Transformation{Kind: KindSpread}, true
	case "just":
		return Transformation{Kind: KindJust}, true
	}

	if rest, found := strings.CutPrefix(t, "edo"); found {
		if n, err := strconv.Atoi(rest); err == nil {
			return Transformation{Kind: KindEDO, Divisions: n}, true
		}
	}

	return Transformation{}, false
}

// parseSemitones reads the unsigned payload of "+<int>" or "-<int>"; the sign
// belongs to the token, so "+-5" and "--5" are not transpositions.
func parseSemitones(payload string) (int, bool) {
	if payload == "" || payload[0] == '+' || payload[0] == '-' {
		return 0, false
	}
	n, err := strconv.Atoi(payload)
	return n, err == nil
}

// parseCentsToken reads "<float>c" or "<float>ct".
func parseCentsToken(t string) (float64, bool) {
	payload, found := strings.CutSuffix(t, "ct")
	if !found {
		payload, found = strings.CutSuffix(t, "c")
	}
	if !found || payload == "" {
		return 0, false
	}
	c, err := strconv.ParseFloat(payload, 64)
	if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	return c, true
}

// Apply parses token and applies it to notes. Unrecognised or malformed tokens
// return notes unchanged.
func Apply(notes []Pitch, token string) []Pitch {
	tr, ok := ParseTransformation(token)
	if !ok {
		return clone(notes)
	}
	return tr.Apply(notes)
}

// Apply runs the transformation over notes and returns a new slice. notes is
// not modified. Transformations that need a reference pitch use notes[0].
func (tr Transformation) Apply(notes []Pitch) []Pitch {
	switch tr.Kind {
	case KindTranspose:
		return mapPitches(notes, func(_ int, p Pitch) Pitch { return p.Transpose(tr.Semitones) })
	case KindCents:
		return mapPitches(notes, func(_ int, p Pitch) Pitch { return p.TransposeCents(tr.Cents) })
	case KindMultiply:
		return mapPitches(notes, func(_ int, p Pitch) Pitch { return p.MultiplyFrequency(tr.Ratio) })
	case KindInvert:
		return invert(notes)
	case KindReverse:
		out := clone(notes)
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	case KindSpread:
		return mapPitches(notes, func(i int, p Pitch) Pitch { return p.Transpose(12 * i) })
	case KindJust:
		return justScale(notes)
	case KindEDO:
		return equalDivision(notes, tr.Divisions)
	}
	return clone(notes)
}

// invert mirrors every pitch around the first on the frequency axis: a note
// a ratio r above the pivot becomes a note r below it.
func invert(notes []Pitch) []Pitch {
	if len(notes) == 0 {
		return clone(notes)
	}
	pivot := notes[0].Frequency()
	return mapPitches(notes, func(_ int, p Pitch) Pitch {
		ratio := p.Frequency() / pivot
		return FromFrequency(pivot / ratio)
	})
}

func justScale(notes []Pitch) []Pitch {
	if len(notes) == 0 {
		return clone(notes)
	}
	root := notes[0].Frequency()
	out := make([]Pitch, len(JustRatios))
	for i, r := range JustRatios {
		out[i] = FromFrequency(root * r)
	}
	return out
}

func equalDivision(notes []Pitch, divisions int) []Pitch {
	if len(notes) == 0 || divisions <= 0 {
		return clone(notes)
	}
	root := notes[0].Frequency()
	out := make([]Pitch, divisions)
	for i := range out {
		out[i] = FromFrequency(root * math.Pow(2, float64(i)/float64(divisions)))
	}
	return out
}

func mapPitches(notes []Pitch, f func(int, Pitch) Pitch) []Pitch {
	out := make([]Pitch, len(notes))
	for i, p := range notes {
		out[i] = f(i, p)
	}
	return out
}

func clone(notes []Pitch) []Pitch {
	if notes == nil {
		return nil
	}
	return append([]Pitch(nil), notes...)
}
