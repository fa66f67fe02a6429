package review

import (
	"time"

	"tableflip.dev/hush/pkg/backend"
)

// Samples returns the built-in fallback feed, timestamped relative to
// now so the ago labels read naturally.
func Samples(now time.Time) []Entry {
	mk := func(text, name, emoji, mood string, age time.Duration, likes int) Entry {
		return Entry{
			Sample: true,
			Review: backend.Review{
				Text:      text,
				Privacy:   string(PrivacyAnonymous),
				Name:      name,
				Emoji:     emoji,
				Mood:      mood,
				Timestamp: now.Add(-age),
				Likes:     likes,
			},
		}
	}

	return []Entry{
		mk("এখানে মন খুলে লিখতে পেরে হালকা লাগছে। কেউ বিচার করে না।",
			DefaultName, "🙏", "sad", 2*time.Hour, 12),
		mk("The breathing exercise helped me through a rough evening.",
			"a quiet friend", "😊", "anxious", 26*time.Hour, 8),
		mk("শুধু কেউ শুনছে জেনেই অনেকটা শান্তি।",
			DefaultName, "💙", "neutral", 3*24*time.Hour, 21),
		mk("I wrote, I let it go, and I slept better than I have in weeks.",
			"night owl", "🌙", "happy", 5*24*time.Hour, 5),
	}
}
