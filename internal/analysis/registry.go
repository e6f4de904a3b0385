package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"olymstats/domain/core"
	"olymstats/domain/views"
)

// Computation derives one view from an engine
type Computation func(*Engine) views.View

// registration binds a view name to its computation; the slice fixes the
// canonical output order
type registration struct {
	name    string
	compute Computation
}

var registrations = []registration{
	{"overview", (*Engine).Overview},
	{"gender_breakdown", (*Engine).GenderBreakdown},
	{"medal_count", (*Engine).MedalCount},
	{"medals_by_country", (*Engine).MedalsByCountry},
	{"country_most_gold", (*Engine).CountryMostGold},
	{"medals_by_year", (*Engine).MedalsByYear},
	{"medals_by_sport", (*Engine).MedalsBySport},
	{"medal_tally", (*Engine).MedalTally},
	{"age_summary", (*Engine).AgeSummary},
	{"age_group_distribution", (*Engine).AgeGroupDistribution},
	{"medal_rate_by_age_group", (*Engine).MedalRateByAgeGroup},
	{"gold_medalist_age", (*Engine).GoldMedalistAge},
	{"physique_by_sport", (*Engine).PhysiqueBySport},
	{"medalist_physique", (*Engine).MedalistPhysique},
	{"medals_by_country_year", (*Engine).MedalsByCountryYear},
	{"host_cities", (*Engine).HostCities},
	{"vietnam_analysis", (*Engine).Vietnam},
	{"column_profile", (*Engine).ColumnProfile},
}

// ViewNames lists every registered view in canonical order
func ViewNames() []string {
	names := make([]string, 0, len(registrations))
	for _, r := range registrations {
		names = append(names, r.name)
	}
	return names
}

// Compute runs one registered view by name
func (e *Engine) Compute(name string) (views.View, error) {
	for _, r := range registrations {
		if r.name == name {
			return r.compute(e), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", core.ErrViewNotFound, name)
}

// ComputeAll runs every registered view concurrently and returns the results
// in canonical order. The engine's table is never mutated, so computations
// can share it freely.
func (e *Engine) ComputeAll(ctx context.Context) ([]views.View, error) {
	results := make([]views.View, len(registrations))
	g, _ := errgroup.WithContext(ctx)
	for i, r := range registrations {
		g.Go(func() error {
			results[i] = r.compute(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
