package game

import "github.com/dustin/go-humanize"

// ScoreFor converts camera displacement into score. The camera only climbs
// (Y <= 0), so the result is never negative.
func ScoreFor(cameraY int, factor int64) int64 {
	score := -int64(cameraY) * factor
	if score < 0 {
		return 0
	}
	return score
}

// HasWon reports whether score reached the win threshold.
func HasWon(score, winScore int64) bool {
	return score >= winScore
}

// FormatScore renders a score with thousands separators.
func FormatScore(score int64) string {
	return humanize.Comma(score)
}
