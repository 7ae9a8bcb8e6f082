package utils

import "time"

// Stats for performance and population monitoring
type Stats struct {
	GenerationsPerSecond float64
	AverageRed           float64
	AverageBlue          float64
	PeakRed              int
	PeakBlue             int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation, numRed, numBlue int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.PeakRed = max(s.PeakRed, numRed)
	s.PeakBlue = max(s.PeakBlue, numBlue)

	// Simple moving average for population
	if s.AverageRed == 0 && s.AverageBlue == 0 {
		s.AverageRed = float64(numRed)
		s.AverageBlue = float64(numBlue)
	} else {
		s.AverageRed = (s.AverageRed * 0.9) + (float64(numRed) * 0.1)
		s.AverageBlue = (s.AverageBlue * 0.9) + (float64(numBlue) * 0.1)
	}
}
