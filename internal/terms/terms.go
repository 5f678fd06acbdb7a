package terms

import (
	"strings"

	"github.com/lucasferri/artmood/internal/intensity"
)

// Rule maps mood vocabulary to art search terms. Keys are matched as
// case-insensitive substrings of the input text. Core terms are emitted on a
// normal match; Strong terms take their place when the text reads as
// emphatic and the rule has any.
type Rule struct {
	Keys   []string
	Core   []string
	Strong []string
}

// BiasTerm steers provider results toward painted works. One hint only;
// stacking mediums (oil + watercolor) over-constrains collection search.
const BiasTerm = "painting"

// MaxTerms caps the derived term list; longer queries dilute results.
const MaxTerms = 5

// emotionRules are evaluated top to bottom; every matching rule contributes,
// in table order.
var emotionRules = []Rule{
	{
		Keys:   []string{"happy", "joy", "joyful", "grateful", "optimistic", "cheerful", "content", "ecstatic"},
		Core:   []string{"sunlight", "festival", "garden", "yellow", "impressionism"},
		Strong: []string{"celebration", "dance", "carnival", "bright", "festival"},
	},
	{
		Keys:   []string{"sad", "down", "melancholy", "depressed", "sorrow", "blue", "grief", "devastated"},
		Core:   []string{"melancholy", "nocturne", "rain", "twilight", "blue"},
		Strong: []string{"mourning", "winter", "night", "shadow", "solitude"},
	},
	{
		Keys:   []string{"calm", "peaceful", "serene", "relaxed", "tranquil"},
		Core:   []string{"landscape", "sea", "horizon", "twilight", "pastoral"},
		Strong: []string{"still water", "dusk", "harbor", "moonlight"},
	},
	{
		Keys:   []string{"anxious", "stressed", "uneasy", "nervous", "tense", "fearful", "worried", "overwhelmed", "terrified", "panic"},
		Core:   []string{"shadow", "night", "storm", "abstract", "gloom"},
		Strong: []string{"tempest", "thunderstorm", "drama", "red", "expressionism"},
	},
	{
		Keys:   []string{"angry", "mad", "furious", "rage", "irritated"},
		Core:   []string{"storm", "battle", "red", "drama"},
		Strong: []string{"war", "fire", "expressionism", "crimson"},
	},
	{
		Keys:   []string{"love", "romantic", "affection", "tender"},
		Core:   []string{"venus", "embrace", "garden", "spring"},
		Strong: []string{"passion", "lovers", "rose", "myth"},
	},
	{
		Keys:   []string{"nostalgic", "longing", "wistful", "homesick"},
		Core:   []string{"memory", "ruins", "portrait", "antique"},
		Strong: []string{"ancient", "relic", "faded", "sepia"},
	},
	{
		Keys:   []string{"lonely", "alone", "isolated", "solitude"},
		Core:   []string{"solitude", "winter", "figure", "empty"},
		Strong: []string{"desolate", "void", "night"},
	},
	{
		Keys:   []string{"energetic", "excited", "alive", "inspired"},
		Core:   []string{"dance", "festival", "movement", "color"},
		Strong: []string{"carnival", "fireworks", "dynamism"},
	},
	{
		Keys: []string{"tired", "exhausted", "weary", "drained"},
		Core: []string{"rest", "interior", "night", "quiet"},
	},
	{
		Keys:   []string{"hopeful", "hope", "renewal"},
		Core:   []string{"dawn", "spring", "blossom", "light"},
		Strong: []string{"sunrise", "rebirth", "morning"},
	},
}

// Vocabulary words are detected directly in the text, independent of the
// emotion rules, and appended after any rule-derived terms. Checked in a
// fixed order: colors, scenes, time/weather.
var (
	colorWords = []string{
		"red", "blue", "yellow", "green", "gold", "pink", "violet", "black", "white",
	}
	sceneWords = []string{
		"sea", "ocean", "mountain", "forest", "garden", "city", "river", "desert", "harbor",
	}
	timeWeatherWords = []string{
		"night", "dawn", "dusk", "twilight", "winter", "spring", "summer",
		"autumn", "rain", "snow", "storm", "sunlight", "moonlight",
	}
)

// Derive turns free mood text into an ordered, deduplicated list of search
// terms. The result always starts with the painting bias term and holds at
// most MaxTerms entries. Deterministic: same text, same terms.
func Derive(text string) []string {
	t := strings.ToLower(text)
	strong := intensity.Classify(text)

	var emotionTerms []string
	for _, rule := range emotionRules {
		if !rule.matches(t) {
			continue
		}
		if strong && len(rule.Strong) > 0 {
			emotionTerms = append(emotionTerms, rule.Strong...)
		} else {
			emotionTerms = append(emotionTerms, rule.Core...)
		}
	}

	var extra []string
	for _, group := range [][]string{colorWords, sceneWords, timeWeatherWords} {
		for _, w := range group {
			if strings.Contains(t, w) {
				extra = append(extra, w)
			}
		}
	}

	// No emotion rule matched: infer a gentle default from tone adjectives,
	// first match wins.
	if len(emotionTerms) == 0 {
		switch {
		case containsAny(t, "calm", "peaceful", "serene"):
			emotionTerms = []string{"landscape", "twilight", "sea"}
		case containsAny(t, "sad", "blue", "down"):
			emotionTerms = []string{"nocturne", "rain", "shadow"}
		case containsAny(t, "happy", "joy", "cheerful"):
			emotionTerms = []string{"sunlight", "garden", "yellow"}
		}
	}

	combined := make([]string, 0, 1+len(emotionTerms)+len(extra))
	combined = append(combined, BiasTerm)
	combined = append(combined, emotionTerms...)
	combined = append(combined, extra...)

	seen := make(map[string]bool, len(combined))
	unique := combined[:0]
	for _, term := range combined {
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, term)
	}

	if len(unique) > MaxTerms {
		unique = unique[:MaxTerms]
	}
	return unique
}

func (r Rule) matches(lowered string) bool {
	for _, k := range r.Keys {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

func containsAny(t string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}
