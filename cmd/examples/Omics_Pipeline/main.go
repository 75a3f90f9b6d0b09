package main

import (
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/trentleslie/gutmetrics/pkg/cleaning"
	"github.com/trentleslie/gutmetrics/pkg/pipeline"
	"github.com/trentleslie/gutmetrics/pkg/scaling"
	"github.com/trentleslie/gutmetrics/pkg/table"
)

// Builds small in-memory cohorts and runs the full preprocessing flow:
// standardize index -> validate -> remove outliers -> scale -> combine.

func metabolomicsTable() *table.Table {
	return table.New(dataframe.LoadRecords([][]string{
		{"public_client_id", "met1", "met2", "shannon", "PD_whole_tree", "chao1", "BMI", "Age", "sex"},
		{"1", "10.2", "20.5", "0.61", "1.20", "100", "24.3", "41", "0"},
		{"2", "9.8", "19.1", "0.58", "1.15", "120", "27.1", "36", "1"},
		{"3", "11.5", "22.3", "0.64", "1.32", "110", "22.8", "52", "0"},
		{"4", "95.0", "21.0", "0.60", "1.25", "130", "25.5", "47", "1"},
		{"5", "10.9", "18.7", "0.59", "1.18", "115", "23.9", "33", "0"},
	}))
}

func proteomicsTable() *table.Table {
	return table.New(dataframe.LoadRecords([][]string{
		{"public_client_id", "prot1", "prot2", "shannon", "sex", "age"},
		{"1", "101.2", "205.1", "0.61", "0", "41"},
		{"2", "98.4", "193.7", "0.58", "1", "36"},
		{"3", "110.9", "221.4", "0.64", "0", "52"},
		{"5", "104.3", "188.2", "0.59", "0", "33"},
	}))
}

func clinicalTable() *table.Table {
	return table.New(dataframe.LoadRecords([][]string{
		{"public_client_id", "lab1", "lab2", "shannon"},
		{"1", "50.1", "151.3", "0.61"},
		{"2", "48.7", "147.9", "0.58"},
		{"3", "55.4", "160.2", "0.64"},
		{"5", "51.8", "139.5", "0.59"},
	}))
}

func standardize(tb *table.Table) (*table.Table, error) {
	return cleaning.StandardizeIndex(tb, "public_client_id", series.Float)
}

func main() {
	clean := pipeline.New(
		pipeline.StepFunc(standardize),
		pipeline.Validate(func(tb *table.Table) error {
			return cleaning.ValidateMetabolomics(tb, nil)
		}),
		pipeline.Transform(func(tb *table.Table) *table.Table {
			return cleaning.RemoveOutliers(tb, "met1", 3.0)
		}),
	)

	metab, err := clean.Run(metabolomicsTable())
	if err != nil {
		log.Fatalf("metabolomics cleaning failed: %v", err)
	}
	fmt.Printf("metabolomics: %d samples after outlier removal\n", metab.Nrow())

	prot, err := standardize(proteomicsTable())
	if err != nil {
		log.Fatalf("proteomics index: %v", err)
	}
	clin, err := standardize(clinicalTable())
	if err != nil {
		log.Fatalf("clinical index: %v", err)
	}

	merged, err := scaling.ScaleAndCombineOmics(metab, prot, clin, table.JoinInner)
	if err != nil {
		log.Fatalf("combine failed: %v", err)
	}

	fmt.Printf("merged: %d samples x %d columns\n", merged.Nrow(), len(merged.Names()))
	fmt.Printf("scaled features: %v\n", scaling.ScaledFeatureNames(merged, nil))
	fmt.Println(merged.DataFrame())
}
