// Package scaling standardizes omics feature columns and merges scaled
// tables into one analysis-ready table. Each scale call fits its
// transform on the rows present in that call only; no scaler state
// survives between calls.
package scaling

import (
	"fmt"

	"github.com/go-gota/gota/series"

	"github.com/trentleslie/gutmetrics/pkg/omics"
	"github.com/trentleslie/gutmetrics/pkg/table"
)

// scale standardizes every feature column of t, leaving the excluded
// metadata columns and the index column untouched. With copy=false the
// caller's table is mutated and returned as-is; otherwise a deep copy is
// scaled. Zero feature columns is a no-op.
func scale(t *table.Table, metadata []string, copy bool) *table.Table {
	if copy {
		t = t.Copy()
	}
	features := ScaledFeatureNames(t, metadata)
	if len(features) == 0 {
		return t
	}
	cols := make([][]float64, len(features))
	for j, name := range features {
		cols[j] = t.Floats(name)
	}
	scaled := NewStandardScaler().FitTransform(cols)
	for j, name := range features {
		t.SetCol(series.New(scaled[j], series.Float, name))
	}
	return t
}

// ScaleMetabolomics standardizes metabolite columns. A nil metadata list
// excludes omics.MetabolomicsPolicy.MetadataColumns.
func ScaleMetabolomics(t *table.Table, metadata []string, copy bool) *table.Table {
	if metadata == nil {
		metadata = omics.MetabolomicsPolicy.MetadataColumns
	}
	return scale(t, metadata, copy)
}

// ScaleProteomics standardizes protein columns. A nil metadata list
// excludes omics.ProteomicsPolicy.MetadataColumns.
func ScaleProteomics(t *table.Table, metadata []string, copy bool) *table.Table {
	if metadata == nil {
		metadata = omics.ProteomicsPolicy.MetadataColumns
	}
	return scale(t, metadata, copy)
}

// ScaleClinicalLabs standardizes clinical lab columns. A nil metadata
// list excludes omics.ClinicalPolicy.MetadataColumns.
func ScaleClinicalLabs(t *table.Table, metadata []string, copy bool) *table.Table {
	if metadata == nil {
		metadata = omics.ClinicalPolicy.MetadataColumns
	}
	return scale(t, metadata, copy)
}

// ScaleAndCombineOmics scales each provided table with its default
// metadata exclusions and joins them on the shared sample index,
// metabolomics first, then proteomics, then clinical labs. The
// metabolomics table is mandatory and is returned unmerged when it is
// the only input. Inputs are never mutated.
func ScaleAndCombineOmics(metab, prot, clin *table.Table, join table.JoinKind) (*table.Table, error) {
	if metab == nil {
		return nil, fmt.Errorf("scaling: metabolomics table is required")
	}
	merged := ScaleMetabolomics(metab, nil, true)

	var rest []*table.Table
	if prot != nil {
		rest = append(rest, ScaleProteomics(prot, nil, true))
	}
	if clin != nil {
		rest = append(rest, ScaleClinicalLabs(clin, nil, true))
	}
	for _, next := range rest {
		var err error
		merged, err = merged.Join(next, join)
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// ScaledFeatureNames returns the feature columns of t in table order:
// every column outside the exclude list and the index column. A nil
// exclude list uses the metabolomics metadata defaults. No scaling is
// performed.
func ScaledFeatureNames(t *table.Table, exclude []string) []string {
	if exclude == nil {
		exclude = omics.MetabolomicsPolicy.MetadataColumns
	}
	excluded := make(map[string]struct{}, len(exclude)+1)
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	if idx := t.Index(); idx != "" {
		excluded[idx] = struct{}{}
	}
	var features []string
	for _, name := range t.Names() {
		if _, ok := excluded[name]; !ok {
			features = append(features, name)
		}
	}
	return features
}
