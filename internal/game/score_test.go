package game

import "testing"

func TestScoreFor(t *testing.T) {
	tests := []struct {
		cameraY int
		want    int64
	}{
		{0, 0},
		{-1, 500_000},
		{-4600, 2_300_000_000},
		{-200_002, 100_001_000_000},
		{-400_000, 200_000_000_000},
		{25, 0}, // below origin never goes negative
	}

	for _, tt := range tests {
		if got := ScoreFor(tt.cameraY, 500_000); got != tt.want {
			t.Errorf("ScoreFor(%d) = %d, want %d", tt.cameraY, got, tt.want)
		}
	}
}

func TestHasWon(t *testing.T) {
	const win = 100_000_000_001
	tests := []struct {
		score int64
		want  bool
	}{
		{0, false},
		{100_000_000_000, false},
		{100_000_000_001, true},
		{200_000_000_000, true},
	}

	for _, tt := range tests {
		if got := HasWon(tt.score, win); got != tt.want {
			t.Errorf("HasWon(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2_300_000_000, "2,300,000,000"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
