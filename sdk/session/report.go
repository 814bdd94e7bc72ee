package session

import (
	"fmt"
	"strings"

	"github.com/leandrodaf/harmony/sdk/theory"
)

// Banner opens and closes every report.
const Banner = "════════════════════════════════════════"

// String formats the report block. A line without notes formats to "".
func (r Result) String() string {
	if r.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(Banner + "\n")
	fmt.Fprintf(&b, "Input: %s\n", joinPitches(r.Input))
	if r.Transform != "" {
		fmt.Fprintf(&b, "Transform: %s\n", r.Transform)
		fmt.Fprintf(&b, "Result: %s\n", joinPitches(r.Output))
	}

	if anyCents(r.Output) {
		b.WriteString("\nFrequencies:\n")
		for _, p := range r.Output {
			fmt.Fprintf(&b, "  %s: %.2f Hz\n", p, p.Frequency())
		}
	}

	rep := r.Report
	if len(rep.FromRoot) > 0 {
		b.WriteString("\nIntervals from root:\n")
		for _, iv := range rep.FromRoot {
			fmt.Fprintf(&b, "  %s → %s: %d semitones (%s)\n", iv.From, iv.To, iv.Semitones, iv.Name)
		}
	}
	if len(rep.Sorted) > 2 {
		b.WriteString("\nConsecutive intervals:\n")
		for _, iv := range rep.Consecutive {
			fmt.Fprintf(&b, "  %s → %s: %d semitones\n", iv.From, iv.To, iv.Semitones)
		}
	}
	if rep.Chord != "" {
		fmt.Fprintf(&b, "\nChord type: %s\n", rep.Chord)
	}

	b.WriteString(Banner + "\n")
	return b.String()
}

func joinPitches(notes []theory.Pitch) string {
	parts := make([]string, len(notes))
	for i, p := range notes {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func anyCents(notes []theory.Pitch) bool {
	for _, p := range notes {
		if p.HasCents() {
			return true
		}
	}
	return false
}
