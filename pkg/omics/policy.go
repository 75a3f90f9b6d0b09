// Package omics names the column conventions each omics assay imposes on
// a sample table: which columns must be present, and which are metadata
// excluded from feature scaling. Keeping the per-type defaults here, as
// exported records, keeps the type-to-policy mapping visible in one place.
package omics

import "strings"

// Kind tags a table with the omics assay that produced it.
type Kind string

const (
	Metabolomics Kind = "metabolomics"
	Microbiome   Kind = "microbiome"
	Proteomics   Kind = "proteomics"
	Clinical     Kind = "clinical"
)

// Policy records the column conventions for one omics type.
// RequiredColumns must all be present for the table to be structurally
// valid; MetadataColumns are excluded from feature scaling.
type Policy struct {
	Kind            Kind
	RequiredColumns []string
	MetadataColumns []string
}

// TotalReadsColumn holds per-sample sequencing depth in microbiome tables.
const TotalReadsColumn = "total_reads"

// DefaultMinReads is the minimum sequencing depth accepted per sample.
const DefaultMinReads = 30000

var (
	// MetabolomicsPolicy requires the diversity-index columns and keeps
	// them, plus the demographic covariates, out of scaling.
	MetabolomicsPolicy = Policy{
		Kind:            Metabolomics,
		RequiredColumns: []string{"shannon", "PD_whole_tree", "chao1"},
		MetadataColumns: []string{"shannon", "PD_whole_tree", "chao1", "BMI", "Age", "sex"},
	}

	// MicrobiomePolicy is the minimal metadata shape for microbiome
	// tables: two abundance columns plus sequencing depth.
	MicrobiomePolicy = Policy{
		Kind:            Microbiome,
		RequiredColumns: []string{"bacteria_1", "bacteria_2", TotalReadsColumn},
	}

	ProteomicsPolicy = Policy{
		Kind:            Proteomics,
		MetadataColumns: []string{"shannon", "sex", "age"},
	}

	ClinicalPolicy = Policy{
		Kind:            Clinical,
		MetadataColumns: []string{"shannon"},
	}
)

// IsOTUColumn reports whether a column name marks a bacterial OTU
// abundance. Abundance columns are recognized purely by naming
// convention; this predicate is the single place to swap in an explicit
// schema tag should tables ever carry one.
func IsOTUColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "bacteria")
}

// OTUColumns filters names down to the OTU abundance columns, preserving
// their order.
func OTUColumns(names []string) []string {
	var otu []string
	for _, n := range names {
		if IsOTUColumn(n) {
			otu = append(otu, n)
		}
	}
	return otu
}
