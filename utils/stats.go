package utils

import "time"

// populationSmoothing is the weight of the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame: its generation number, population and how long it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// exponential moving average, seeded by the first sample
	sample := float64(population)
	s.samples++
	if s.samples == 1 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += populationSmoothing * (sample - s.AveragePopulation)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
