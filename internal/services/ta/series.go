// Package ta evaluates technical indicators over aggregated bar series and
// classifies their readings into trade signals.
package ta

import "CryptoInfo/internal/domain/models"

// Series is the columnar form an indicator computation consumes.
type Series struct {
	Opens   []float64
	Highs   []float64
	Lows    []float64
	Closes  []float64
	Volumes []float64
}

// NewSeries converts bars to columns. Malformed bars are skipped so a single
// bad row never fails the whole computation.
func NewSeries(bars []models.Bar) Series {
	s := Series{
		Opens:   make([]float64, 0, len(bars)),
		Highs:   make([]float64, 0, len(bars)),
		Lows:    make([]float64, 0, len(bars)),
		Closes:  make([]float64, 0, len(bars)),
		Volumes: make([]float64, 0, len(bars)),
	}
	for _, b := range bars {
		if !b.Valid() {
			continue
		}
		s.Opens = append(s.Opens, b.Open)
		s.Highs = append(s.Highs, b.High)
		s.Lows = append(s.Lows, b.Low)
		s.Closes = append(s.Closes, b.Close)
		vol := b.Volume
		if vol < 0 {
			vol = 0
		}
		s.Volumes = append(s.Volumes, vol)
	}
	return s
}

// Len is the number of usable bars.
func (s Series) Len() int { return len(s.Closes) }

// LastClose returns the most recent close, or 0 for an empty series.
func (s Series) LastClose() float64 { return last(s.Closes) }

// LastVolume returns the most recent volume, or 0 for an empty series.
func (s Series) LastVolume() float64 { return last(s.Volumes) }

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
