package scaling

import "gonum.org/v1/gonum/stat"

// StandardScaler centers each column to zero mean and scales it to unit
// population variance. Zero-variance columns transform to all zeros
// rather than NaN.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit computes per-column mean and population standard deviation.
// cols is column-major: one slice per feature column.
func (s *StandardScaler) Fit(cols [][]float64) {
	s.Mean = make([]float64, len(cols))
	s.Std = make([]float64, len(cols))
	for j, col := range cols {
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = stat.PopStdDev(col, nil)
	}
	s.fit = true
}

// Transform applies (x-mean)/std per column without touching the input.
// An unfit scaler returns the input unchanged.
func (s *StandardScaler) Transform(cols [][]float64) [][]float64 {
	if !s.fit {
		return cols
	}
	out := make([][]float64, len(cols))
	for j, col := range cols {
		scaled := make([]float64, len(col))
		if s.Std[j] != 0 {
			for i, v := range col {
				scaled[i] = (v - s.Mean[j]) / s.Std[j]
			}
		}
		out[j] = scaled
	}
	return out
}

func (s *StandardScaler) FitTransform(cols [][]float64) [][]float64 {
	s.Fit(cols)
	return s.Transform(cols)
}
