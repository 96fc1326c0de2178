package profile

import (
	"sort"
	"strconv"
	"strings"

	"tablematch/domain/table"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// ColumnProfile summarizes one column of a dataset for the import panel.
type ColumnProfile struct {
	Name           string  `json:"name"`
	NonEmptyCount  int     `json:"non_empty_count"`
	FillRate       float64 `json:"fill_rate"`
	DistinctCount  int     `json:"distinct_count"`
	NumericRate    float64 `json:"numeric_rate"`
	MeanValueLen   float64 `json:"mean_value_len"`
	MedianValueLen float64 `json:"median_value_len"`
}

// Profile computes a per-column summary of the dataset. Columns are profiled
// concurrently; each goroutine only touches its own slot of the result. The
// dataset is read-only here, matching its immutable lifecycle.
func Profile(ds *table.Dataset) []ColumnProfile {
	if ds == nil || len(ds.Headers) == 0 {
		return []ColumnProfile{}
	}

	profiles := make([]ColumnProfile, len(ds.Headers))
	var g errgroup.Group
	for i, header := range ds.Headers {
		i, header := i, header
		g.Go(func() error {
			profiles[i] = profileColumn(ds, header)
			return nil
		})
	}
	// Workers never return an error; Wait is only a join point.
	_ = g.Wait()
	return profiles
}

func profileColumn(ds *table.Dataset, header string) ColumnProfile {
	p := ColumnProfile{Name: header}
	if len(ds.Rows) == 0 {
		return p
	}

	distinct := make(map[string]bool)
	lengths := make([]float64, 0, len(ds.Rows))
	numericCount := 0

	for _, row := range ds.Rows {
		value := row[header]
		if value == "" {
			continue
		}
		p.NonEmptyCount++
		distinct[value] = true
		lengths = append(lengths, float64(len(value)))
		if looksNumeric(value) {
			numericCount++
		}
	}

	p.FillRate = float64(p.NonEmptyCount) / float64(len(ds.Rows))
	p.DistinctCount = len(distinct)
	if p.NonEmptyCount > 0 {
		p.NumericRate = float64(numericCount) / float64(p.NonEmptyCount)
		if mean, err := stats.Mean(lengths); err == nil {
			p.MeanValueLen = mean
		}
		if median, err := stats.Median(lengths); err == nil {
			p.MedianValueLen = median
		}
	}
	return p
}

// looksNumeric accepts integers and decimals, tolerating a comma decimal
// separator as exported by some locales.
func looksNumeric(value string) bool {
	normalized := strings.ReplaceAll(value, ",", ".")
	_, err := strconv.ParseFloat(normalized, 64)
	return err == nil
}

// SortByFillRate orders profiles with the sparsest columns first, which is
// how the import panel lists them.
func SortByFillRate(profiles []ColumnProfile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].FillRate < profiles[j].FillRate
	})
}
