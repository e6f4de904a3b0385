// Package stats provides statistical adapters backed by gonum
package stats

import (
	"gonum.org/v1/gonum/stat"

	"olymstats/ports"
)

// StandardScaler standardizes values to zero mean and unit variance
type StandardScaler struct{}

// NewStandardScaler creates a gonum-backed scaler
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

var _ ports.Scaler = (*StandardScaler)(nil)

// Standardize transforms values to (v - mean) / stddev. Returns ok=false for
// fewer than two values or zero variance, cases where the transform is
// undefined.
func (s *StandardScaler) Standardize(values []float64) ([]float64, bool) {
	if len(values) < 2 {
		return nil, false
	}
	mean, std := stat.MeanStdDev(values, nil)
	if std == 0 {
		return nil, false
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out, true
}
