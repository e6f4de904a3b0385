package ports

// Scaler standardizes a numeric column to zero mean and unit variance.
// The scaling stage treats a nil Scaler as "capability absent" and no-ops:
// scaling is best effort and never required for downstream aggregation.
type Scaler interface {
	// Standardize returns the transformed values. Input order is preserved.
	// Returns ok=false when the data admits no transform (fewer than two
	// values, or zero variance).
	Standardize(values []float64) (out []float64, ok bool)
}
