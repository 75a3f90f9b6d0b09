package cleaning

import (
	"fmt"
	"strings"
)

// EmptyInputError reports an operation given a table with no rows.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot %s an empty table", e.Op)
}

// DuplicateKeyError reports repeated values in a column that must be
// unique.
type DuplicateKeyError struct {
	Column string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate sample IDs found in column %q", e.Column)
}

// MissingColumnsError reports structurally required columns that are
// absent. Columns keeps the required-list order. Hint carries context for
// checks with no concrete column list, such as the OTU naming convention.
type MissingColumnsError struct {
	Columns []string
	Hint    string
}

func (e *MissingColumnsError) Error() string {
	switch {
	case len(e.Columns) > 0:
		return "missing required columns: " + strings.Join(e.Columns, ", ")
	case e.Hint != "":
		return e.Hint
	default:
		return "missing required columns"
	}
}

// NonNumericDataError reports columns expected to hold only numeric
// values that do not.
type NonNumericDataError struct {
	Columns []string
}

func (e *NonNumericDataError) Error() string {
	return "non-numeric data found in columns: " + strings.Join(e.Columns, ", ")
}

// InsufficientDepthError reports samples whose sequencing depth falls
// below the accepted minimum. Samples holds every offending row
// identifier in table order.
type InsufficientDepthError struct {
	Samples  []string
	MinReads int
}

func (e *InsufficientDepthError) Error() string {
	return fmt.Sprintf("samples [%s] have fewer than %d reads",
		strings.Join(e.Samples, ", "), e.MinReads)
}

// NotNormalizedError reports OTU abundance rows that do not sum to 1
// within tolerance.
type NotNormalizedError struct{}

func (e *NotNormalizedError) Error() string {
	return "OTU abundances are not normalized to sum to 1"
}
