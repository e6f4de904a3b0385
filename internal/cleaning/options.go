package cleaning

import (
	"fmt"

	"olymstats/internal/errors"
)

// FillStrategy selects the statistic used for numeric imputation
type FillStrategy string

const (
	StrategyMean   FillStrategy = "mean"
	StrategyMedian FillStrategy = "median"
)

// OutlierPolicy selects how IQR outliers are handled in the full recipe
type OutlierPolicy string

const (
	// OutlierClip saturates values to the IQR bounds. Preferred: it keeps
	// the row count intact, so group-imputation denominators are unbiased.
	OutlierClip OutlierPolicy = "clip"
	// OutlierRemove drops rows outside the IQR bounds
	OutlierRemove OutlierPolicy = "remove"
	// OutlierNone skips outlier handling
	OutlierNone OutlierPolicy = "none"
)

// DefaultIQRMultiplier is the fixed k in [Q1-k*IQR, Q3+k*IQR]
const DefaultIQRMultiplier = 1.5

// Options is the externally tunable configuration of the full cleaning
// recipe. Bucket boundaries, the IQR multiplier and the canonical categorical
// domains are fixed constants, not options.
type Options struct {
	RemoveExactDuplicates bool          `json:"remove_exact_duplicates"`
	FillNumeric           FillStrategy  `json:"fill_numeric"`
	UseGroupImputation    bool          `json:"use_group_imputation"`
	HandleOutliers        OutlierPolicy `json:"handle_outliers"`
	ClipToValid           bool          `json:"clip_to_valid"`
}

// DefaultOptions returns the canonical recipe configuration
func DefaultOptions() Options {
	return Options{
		RemoveExactDuplicates: true,
		FillNumeric:           StrategyMedian,
		UseGroupImputation:    true,
		HandleOutliers:        OutlierClip,
		ClipToValid:           true,
	}
}

// Validate surfaces unrecognized option values to the caller. Silently
// defaulting would mask a misconfigured run.
func (o Options) Validate() error {
	switch o.FillNumeric {
	case StrategyMean, StrategyMedian:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown fill_numeric strategy %q", o.FillNumeric))
	}
	switch o.HandleOutliers {
	case OutlierClip, OutlierRemove, OutlierNone:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown handle_outliers policy %q", o.HandleOutliers))
	}
	return nil
}
