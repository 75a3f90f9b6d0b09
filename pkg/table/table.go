// Package table adapts gota dataframes to the sample-table shape the
// preprocessing stages work on: rows keyed by a designated
// sample-identifier column, columns named by feature or metadata labels.
// Everything here is direct delegation to the dataframe library.
package table

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// JoinKind selects how two tables are merged on their sample index.
type JoinKind string

const (
	JoinInner JoinKind = "inner"
	JoinOuter JoinKind = "outer"
)

// Table is a sample-by-feature table: a dataframe plus the name of the
// column holding the sample identifier. An empty index name means no
// column has been designated yet.
type Table struct {
	df    dataframe.DataFrame
	index string
}

// New wraps a dataframe with no designated index column.
func New(df dataframe.DataFrame) *Table { return &Table{df: df} }

// FromSeries builds a table directly from columns.
func FromSeries(cols ...series.Series) *Table { return New(dataframe.New(cols...)) }

// Derive carries t's index designation onto a new frame.
func (t *Table) Derive(df dataframe.DataFrame) *Table { return &Table{df: df, index: t.index} }

// DataFrame exposes the underlying frame for direct collaborator calls.
func (t *Table) DataFrame() dataframe.DataFrame { return t.df }

// Err surfaces any error the dataframe library recorded.
func (t *Table) Err() error { return t.df.Err }

// Nrow returns the number of samples.
func (t *Table) Nrow() int { return t.df.Nrow() }

// Names returns the column names in table order.
func (t *Table) Names() []string { return t.df.Names() }

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Col returns the named column.
func (t *Table) Col(name string) series.Series { return t.df.Col(name) }

// Floats returns the named column as float64 values.
func (t *Table) Floats(name string) []float64 { return t.df.Col(name).Float() }

// Records returns the table as records, header row first.
func (t *Table) Records() [][]string { return t.df.Records() }

// Copy returns a deep copy sharing no storage with t.
func (t *Table) Copy() *Table { return &Table{df: t.df.Copy(), index: t.index} }

// SetCol replaces the column with the same name in place, or appends a
// new one.
func (t *Table) SetCol(s series.Series) { t.df = t.df.Mutate(s) }

// SetIndex designates an existing column as the sample identifier.
func (t *Table) SetIndex(name string) error {
	if !t.Has(name) {
		return fmt.Errorf("table: index column %q not present", name)
	}
	t.index = name
	return nil
}

// Index returns the designated sample-identifier column name, empty if
// none has been set.
func (t *Table) Index() string { return t.index }

// Keys returns the sample identifiers in row order. Tables without a
// designated index fall back to positional row numbers.
func (t *Table) Keys() []string {
	if t.index == "" {
		keys := make([]string, t.Nrow())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	return t.df.Col(t.index).Records()
}

// Join merges two tables on their shared index column. Inner keeps the
// intersection of sample identifiers, outer the union with missing cells
// filled as NaN by the dataframe library.
func (t *Table) Join(o *Table, kind JoinKind) (*Table, error) {
	if t.index == "" || o.index == "" {
		return nil, fmt.Errorf("table: join requires both tables keyed by an index column")
	}
	if t.index != o.index {
		return nil, fmt.Errorf("table: index columns differ: %q vs %q", t.index, o.index)
	}
	var df dataframe.DataFrame
	switch kind {
	case JoinInner:
		df = t.df.InnerJoin(o.df, t.index)
	case JoinOuter:
		df = t.df.OuterJoin(o.df, t.index)
	default:
		return nil, fmt.Errorf("table: unsupported join kind %q", kind)
	}
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df, index: t.index}, nil
}
