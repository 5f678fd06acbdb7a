package intensity

import (
	"strings"
	"unicode"
)

// Breakdown shows which emphasis signals fired for a piece of text.
type Breakdown struct {
	Exclamation bool
	Intensifier bool
	Crisis      bool
	Strong      bool
}

// intensifiers only count when they immediately precede another word
// ("so devastated" yes, a trailing "really" no).
var intensifiers = map[string]bool{
	"very": true, "really": true, "so": true,
	"extremely": true, "super": true, "incredibly": true,
}

var crisisWords = []string{
	"overwhelmed", "ecstatic", "devastated", "furious", "terrified", "panic",
}

// Classify reports whether text reads as emotionally emphatic. At least two
// of the three signals must hold.
func Classify(text string) bool {
	return ClassifyWithBreakdown(text).Strong
}

// ClassifyWithBreakdown computes the emphasis verdict with signal details.
func ClassifyWithBreakdown(text string) Breakdown {
	t := strings.ToLower(text)

	b := Breakdown{
		Exclamation: strings.Contains(t, "!"),
		Intensifier: hasIntensifier(t),
		Crisis:      hasCrisisWord(t),
	}

	hits := 0
	for _, on := range []bool{b.Exclamation, b.Intensifier, b.Crisis} {
		if on {
			hits++
		}
	}
	b.Strong = hits >= 2
	return b
}

func hasIntensifier(t string) bool {
	words := strings.Fields(t)
	for i, w := range words {
		w = trimWord(w)
		if intensifiers[w] && i < len(words)-1 {
			return true
		}
	}
	return false
}

func hasCrisisWord(t string) bool {
	for _, w := range crisisWords {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
