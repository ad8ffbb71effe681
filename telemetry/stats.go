// Package telemetry keeps per-session round statistics and an optional CSV
// log of finished rounds.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID              string  `csv:"id"`
	Difficulty      string  `csv:"difficulty"`
	Scale           int     `csv:"scale"`
	Score           int     `csv:"score"`
	Length          int     `csv:"length"`
	Cause           string  `csv:"cause"`
	StartedAt       string  `csv:"started_at"` // RFC 3339
	DurationSeconds float64 `csv:"duration_seconds"`
}

// SessionStats holds the rounds played since the program started. Nothing is
// written to disk.
type SessionStats struct {
	rounds []RoundRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		rounds: make([]RoundRecord, 0),
	}
}

// AddRound appends a finished round.
func (s *SessionStats) AddRound(r RoundRecord) {
	s.rounds = append(s.rounds, r)
}

// RoundsPlayed returns the number of finished rounds.
func (s *SessionStats) RoundsPlayed() int {
	return len(s.rounds)
}

// Last returns the most recent round.
func (s *SessionStats) Last() (RoundRecord, bool) {
	if len(s.rounds) == 0 {
		return RoundRecord{}, false
	}
	return s.rounds[len(s.rounds)-1], true
}

// Rounds returns a copy of all recorded rounds, oldest first.
func (s *SessionStats) Rounds() []RoundRecord {
	out := make([]RoundRecord, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// HighScore restituisce il punteggio massimo registrato.
func (s *SessionStats) HighScore() int {
	high := 0
	for _, r := range s.rounds {
		if r.Score > high {
			high = r.Score
		}
	}
	return high
}

func (s *SessionStats) scores() []float64 {
	scores := make([]float64, len(s.rounds))
	for i, r := range s.rounds {
		scores[i] = float64(r.Score)
	}
	return scores
}

// AverageScore returns the mean score, 0 with no rounds.
func (s *SessionStats) AverageScore() float64 {
	if len(s.rounds) == 0 {
		return 0
	}
	return stat.Mean(s.scores(), nil)
}

// ScoreStdDev returns the sample standard deviation of scores, 0 with fewer
// than two rounds.
func (s *SessionStats) ScoreStdDev() float64 {
	if len(s.rounds) < 2 {
		return 0
	}
	return stat.StdDev(s.scores(), nil)
}

// MedianScore returns the median score, averaging the middle pair for an even
// number of rounds.
func (s *SessionStats) MedianScore() float64 {
	scores := s.scores()
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		return (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	}
	return scores[len(scores)/2]
}
