// Package markup provides implementations of the Markup interface.
// A Markup decides how a highlighted span and its tooltip look once
// written into annotated text; the annotators decide where spans go.
package markup

import "strconv"

// FormatScore renders an AI score in its shortest decimal form,
// so 0.9 prints as "0.9" and 1 as "1".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// ScoreTooltip is the tooltip text carried by an AI sentence wrapper.
func ScoreTooltip(score float64) string {
	return "AI score: " + FormatScore(score)
}
