package choreo

import "time"

// TypingDelays returns, for each rune of text, the wait after it is typed
// before the next one appears.
func TypingDelays(text string) []time.Duration {
	var out []time.Duration
	for _, r := range text {
		if r == ' ' || r == '.' {
			out = append(out, TypingPause)
		} else {
			out = append(out, TypingStep)
		}
	}
	return out
}

// TypingDuration is the time from the first rune appearing until the last
// rune's delay has elapsed.
func TypingDuration(text string) time.Duration {
	var total time.Duration
	for _, d := range TypingDelays(text) {
		total += d
	}
	return total
}

// Typed returns the prefix of text visible after elapsed time since typing
// started. The first rune appears immediately.
func Typed(text string, elapsed time.Duration) string {
	if elapsed < 0 {
		return ""
	}
	var at time.Duration
	for i, r := range text {
		if at > elapsed {
			return text[:i]
		}
		if r == ' ' || r == '.' {
			at += TypingPause
		} else {
			at += TypingStep
		}
	}
	return text
}
