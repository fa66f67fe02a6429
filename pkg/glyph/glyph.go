// Package glyph holds the symbol tables used across the console and TUI
// surfaces: moods, notification severities, and ambient sounds.
package glyph

// Glyph pairs a symbol with its meaning for the legend table.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Kind    Kind
}

// Kind groups glyphs in the legend.
type Kind int

const (
	KindMood Kind = iota
	KindSeverity
	KindSound
)

func (g Glyph) String() string {
	return g.Symbol
}

// DefaultGlyphs returns the full legend in display order.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 11)

	g = append(g, Glyph{
		Key:     "happy",
		Symbol:  "😊",
		Meaning: "feeling good",
		Kind:    KindMood,
	}, Glyph{
		Key:     "neutral",
		Symbol:  "😐",
		Meaning: "feeling steady",
		Kind:    KindMood,
	}, Glyph{
		Key:     "sad",
		Symbol:  "😔",
		Meaning: "feeling low",
		Kind:    KindMood,
	}, Glyph{
		Key:     "anxious",
		Symbol:  "😰",
		Meaning: "feeling anxious",
		Kind:    KindMood,
	}, Glyph{
		Key:     "info",
		Symbol:  "ⓘ",
		Meaning: "information",
		Kind:    KindSeverity,
	}, Glyph{
		Key:     "success",
		Symbol:  "✔",
		Meaning: "done",
		Kind:    KindSeverity,
	}, Glyph{
		Key:     "warning",
		Symbol:  "▲",
		Meaning: "needs attention",
		Kind:    KindSeverity,
	}, Glyph{
		Key:     "error",
		Symbol:  "✘",
		Meaning: "something went wrong",
		Kind:    KindSeverity,
	}, Glyph{
		Key:     "rain",
		Symbol:  "🌧",
		Meaning: "rain loop",
		Kind:    KindSound,
	}, Glyph{
		Key:     "waves",
		Symbol:  "🌊",
		Meaning: "ocean waves loop",
		Kind:    KindSound,
	}, Glyph{
		Key:     "forest",
		Symbol:  "🌲",
		Meaning: "forest ambience loop",
		Kind:    KindSound,
	})

	return g
}

// ForKey returns the glyph registered under key, or a blank glyph.
func ForKey(key string) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Key == key {
			return g
		}
	}
	return Glyph{Key: key, Symbol: " ", Meaning: "unknown"}
}
