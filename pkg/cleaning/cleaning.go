// Package cleaning validates and normalizes raw omics tables before
// scaling. Every check either passes or rejects the whole table with a
// typed error; nothing is partially cleaned.
package cleaning

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/trentleslie/gutmetrics/pkg/omics"
	"github.com/trentleslie/gutmetrics/pkg/stats"
	"github.com/trentleslie/gutmetrics/pkg/table"
)

// DefaultOutlierStd is the IQR multiplier used when none is given.
const DefaultOutlierStd = 3.0

// Row sums are compared against 1.0 with absolute plus relative
// tolerance, numpy allclose defaults.
const (
	sumAbsTol = 1e-8
	sumRelTol = 1e-5
)

// StandardizeIndex re-keys the table by indexCol cast to indexType
// (series.Float or series.Int) and returns a new table. The caller's
// table is never modified.
func StandardizeIndex(t *table.Table, indexCol string, indexType series.Type) (*table.Table, error) {
	if t.Nrow() == 0 {
		return nil, &EmptyInputError{Op: "standardize the index of"}
	}
	if !t.Has(indexCol) {
		return nil, &MissingColumnsError{Columns: []string{indexCol}}
	}
	recs := t.Col(indexCol).Records()
	seen := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		if _, ok := seen[r]; ok {
			return nil, &DuplicateKeyError{Column: indexCol}
		}
		seen[r] = struct{}{}
	}

	out := t.Copy()
	switch indexType {
	case series.Float:
		out.SetCol(series.New(out.Floats(indexCol), series.Float, indexCol))
	case series.Int:
		ints, err := out.Col(indexCol).Int()
		if err != nil {
			return nil, fmt.Errorf("cleaning: cast index %q to int: %w", indexCol, err)
		}
		out.SetCol(series.New(ints, series.Int, indexCol))
	default:
		return nil, fmt.Errorf("cleaning: index type %v is not numeric", indexType)
	}
	if err := out.SetIndex(indexCol); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveOutliers keeps only rows whose value in column lies within
// [Q1-nStd*IQR, Q3+nStd*IQR], both bounds inclusive, with quartiles
// interpolated linearly. nStd <= 0 selects DefaultOutlierStd. A zero IQR
// collapses the bounds to [Q1, Q3], so runs of equal values are never
// dropped. There are no error modes; a column that is not present leaves
// the table untouched.
func RemoveOutliers(t *table.Table, column string, nStd float64) *table.Table {
	if nStd <= 0 {
		nStd = DefaultOutlierStd
	}
	if t.Nrow() == 0 || !t.Has(column) {
		return t
	}
	q1, q3, iqr := stats.IQR(t.Floats(column))
	lower := q1 - nStd*iqr
	upper := q3 + nStd*iqr
	df := t.DataFrame().
		Filter(dataframe.F{Colname: column, Comparator: series.GreaterEq, Comparando: lower}).
		Filter(dataframe.F{Colname: column, Comparator: series.LessEq, Comparando: upper})
	return t.Derive(df)
}

// ValidateMetabolomics checks that a metabolomics table carries the
// required diversity-index columns and that every remaining metabolite
// column is numeric. A nil required list uses
// omics.MetabolomicsPolicy.RequiredColumns. The table is not modified.
func ValidateMetabolomics(t *table.Table, required []string) error {
	if t.Nrow() == 0 {
		return &EmptyInputError{Op: "validate"}
	}
	if required == nil {
		required = omics.MetabolomicsPolicy.RequiredColumns
	}
	var missing []string
	for _, col := range required {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}

	requiredSet := make(map[string]struct{}, len(required))
	for _, col := range required {
		requiredSet[col] = struct{}{}
	}
	var nonNumeric []string
	for _, name := range t.Names() {
		if _, ok := requiredSet[name]; ok || name == t.Index() {
			continue
		}
		switch t.Col(name).Type() {
		case series.Float, series.Int:
		default:
			nonNumeric = append(nonNumeric, name)
		}
	}
	if len(nonNumeric) > 0 {
		return &NonNumericDataError{Columns: nonNumeric}
	}
	return nil
}

// ValidateMicrobiome checks that a microbiome table has OTU abundance
// columns, that per-sample sequencing depth meets minReads when a
// total_reads column is present, and that abundances sum to 1 per row.
// minReads <= 0 selects omics.DefaultMinReads.
func ValidateMicrobiome(t *table.Table, minReads int) error {
	if t.Nrow() == 0 {
		return &EmptyInputError{Op: "validate"}
	}
	if minReads <= 0 {
		minReads = omics.DefaultMinReads
	}
	otu := omics.OTUColumns(t.Names())
	if len(otu) == 0 {
		return &MissingColumnsError{Hint: "no bacterial OTU columns found"}
	}

	if t.Has(omics.TotalReadsColumn) {
		reads := t.Floats(omics.TotalReadsColumn)
		keys := t.Keys()
		var low []string
		for i, r := range reads {
			if r < float64(minReads) {
				low = append(low, keys[i])
			}
		}
		if len(low) > 0 {
			return &InsufficientDepthError{Samples: low, MinReads: minReads}
		}
	}

	cols := make([][]float64, len(otu))
	for j, name := range otu {
		cols[j] = t.Floats(name)
	}
	for i := 0; i < t.Nrow(); i++ {
		sum := 0.0
		for j := range cols {
			sum += cols[j][i]
		}
		if !scalar.EqualWithinAbsOrRel(sum, 1.0, sumAbsTol, sumRelTol) {
			return &NotNormalizedError{}
		}
	}
	return nil
}

// CleanMetadata enforces the minimal microbiome metadata shape
// (omics.MicrobiomePolicy) and passes the table through unchanged.
// Identity on success; this is the hook where metadata normalization
// will live.
func CleanMetadata(t *table.Table) (*table.Table, error) {
	for _, col := range omics.MicrobiomePolicy.RequiredColumns {
		if !t.Has(col) {
			return nil, &MissingColumnsError{}
		}
	}
	return t, nil
}
