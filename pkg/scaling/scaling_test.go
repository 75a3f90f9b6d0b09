package scaling

import (
	"math/rand"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/trentleslie/gutmetrics/pkg/table"
)

const nSamples = 100

func normal(r *rand.Rand, mean, std float64) []float64 {
	out := make([]float64, nSamples)
	for i := range out {
		out[i] = r.NormFloat64()*std + mean
	}
	return out
}

func ids() []int {
	out := make([]int, nSamples)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func metabolomicsFixture(t *testing.T) *table.Table {
	t.Helper()
	r := rand.New(rand.NewSource(42))
	sex := make([]int, nSamples)
	for i := range sex {
		if r.Float64() < 0.5 {
			sex[i] = 1
		}
	}
	tb := table.FromSeries(
		series.New(ids(), series.Int, "public_client_id"),
		series.New(normal(r, 10, 2), series.Float, "met1"),
		series.New(normal(r, 20, 5), series.Float, "met2"),
		series.New(normal(r, 0.6, 0.05), series.Float, "shannon"),
		series.New(normal(r, 25, 3), series.Float, "BMI"),
		series.New(normal(r, 40, 10), series.Float, "Age"),
		series.New(sex, series.Int, "sex"),
	)
	require.NoError(t, tb.Err())
	require.NoError(t, tb.SetIndex("public_client_id"))
	return tb
}

func proteomicsFixture(t *testing.T) *table.Table {
	t.Helper()
	r := rand.New(rand.NewSource(7))
	tb := table.FromSeries(
		series.New(ids(), series.Int, "public_client_id"),
		series.New(normal(r, 100, 20), series.Float, "prot1"),
		series.New(normal(r, 200, 50), series.Float, "prot2"),
		series.New(normal(r, 0.6, 0.05), series.Float, "shannon"),
	)
	require.NoError(t, tb.Err())
	require.NoError(t, tb.SetIndex("public_client_id"))
	return tb
}

func clinicalFixture(t *testing.T) *table.Table {
	t.Helper()
	r := rand.New(rand.NewSource(13))
	tb := table.FromSeries(
		series.New(ids(), series.Int, "public_client_id"),
		series.New(normal(r, 50, 10), series.Float, "lab1"),
		series.New(normal(r, 150, 30), series.Float, "lab2"),
		series.New(normal(r, 0.6, 0.05), series.Float, "shannon"),
	)
	require.NoError(t, tb.Err())
	require.NoError(t, tb.SetIndex("public_client_id"))
	return tb
}

func assertStandardized(t *testing.T, tb *table.Table, col string) {
	t.Helper()
	vals := tb.Floats(col)
	assert.InDelta(t, 0, stat.Mean(vals, nil), 1e-10, "mean of %s", col)
	assert.InDelta(t, 1, stat.PopStdDev(vals, nil), 1e-10, "pop std of %s", col)
}

func TestScaleMetabolomics(t *testing.T) {
	tb := metabolomicsFixture(t)

	scaled := ScaleMetabolomics(tb, nil, true)

	assertStandardized(t, scaled, "met1")
	assertStandardized(t, scaled, "met2")

	// Metadata and index columns come back untouched.
	for _, col := range []string{"public_client_id", "shannon", "BMI", "Age", "sex"} {
		assert.Equal(t, tb.Col(col).Records(), scaled.Col(col).Records(), "column %s", col)
	}
}

func TestScaleCopyTrueLeavesInputUnchanged(t *testing.T) {
	tb := metabolomicsFixture(t)
	before := tb.Records()

	scaled := ScaleMetabolomics(tb, nil, true)

	assert.Equal(t, before, tb.Records())
	assert.NotSame(t, tb, scaled)
}

func TestScaleCopyFalseMutatesInPlace(t *testing.T) {
	tb := metabolomicsFixture(t)

	scaled := ScaleMetabolomics(tb, nil, false)

	assert.Same(t, tb, scaled)
	assertStandardized(t, tb, "met1")
}

func TestScaleProteomics(t *testing.T) {
	tb := proteomicsFixture(t)

	scaled := ScaleProteomics(tb, nil, true)

	assertStandardized(t, scaled, "prot1")
	assertStandardized(t, scaled, "prot2")
	assert.Equal(t, tb.Col("shannon").Records(), scaled.Col("shannon").Records())
}

func TestScaleClinicalLabs(t *testing.T) {
	tb := clinicalFixture(t)

	scaled := ScaleClinicalLabs(tb, nil, true)

	assertStandardized(t, scaled, "lab1")
	assertStandardized(t, scaled, "lab2")
	assert.Equal(t, tb.Col("shannon").Records(), scaled.Col("shannon").Records())
}

func TestScaleNoFeatureColumnsIsNoOp(t *testing.T) {
	tb := table.FromSeries(
		series.New([]float64{0.5, 0.6}, series.Float, "shannon"),
	)

	scaled := ScaleClinicalLabs(tb, nil, false)

	assert.Same(t, tb, scaled)
	assert.Equal(t, []float64{0.5, 0.6}, scaled.Floats("shannon"))
}

func TestScaleCustomMetadata(t *testing.T) {
	tb := metabolomicsFixture(t)

	scaled := ScaleMetabolomics(tb, []string{"met1", "shannon", "PD_whole_tree", "chao1", "BMI", "Age", "sex"}, true)

	assert.Equal(t, tb.Col("met1").Records(), scaled.Col("met1").Records())
	assertStandardized(t, scaled, "met2")
}

func TestScaleAndCombineAll(t *testing.T) {
	metab := metabolomicsFixture(t)
	prot := proteomicsFixture(t)
	clin := clinicalFixture(t)

	merged, err := ScaleAndCombineOmics(metab, prot, clin, table.JoinInner)
	require.NoError(t, err)

	assert.Equal(t, nSamples, merged.Nrow())
	for _, col := range []string{"met1", "met2", "prot1", "prot2", "lab1", "lab2"} {
		require.True(t, merged.Has(col), "column %s", col)
		assertStandardized(t, merged, col)
	}

	// Inputs stay unscaled.
	assert.InDelta(t, 10, stat.Mean(metab.Floats("met1"), nil), 1)
}

func TestScaleAndCombineSubset(t *testing.T) {
	merged, err := ScaleAndCombineOmics(metabolomicsFixture(t), proteomicsFixture(t), nil, table.JoinInner)
	require.NoError(t, err)

	for _, col := range []string{"met1", "met2", "prot1", "prot2"} {
		assert.True(t, merged.Has(col), "column %s", col)
	}
	assert.False(t, merged.Has("lab1"))
}

func TestScaleAndCombineSingleTable(t *testing.T) {
	merged, err := ScaleAndCombineOmics(metabolomicsFixture(t), nil, nil, table.JoinInner)
	require.NoError(t, err)

	assert.Equal(t, nSamples, merged.Nrow())
	assertStandardized(t, merged, "met1")
}

func TestScaleAndCombineInnerRestrictsToSharedSamples(t *testing.T) {
	metab := metabolomicsFixture(t)
	clin := table.FromSeries(
		series.New([]int{1, 2, 3, 999}, series.Int, "public_client_id"),
		series.New([]float64{50, 55, 60, 65}, series.Float, "lab1"),
	)
	require.NoError(t, clin.SetIndex("public_client_id"))

	merged, err := ScaleAndCombineOmics(metab, nil, clin, table.JoinInner)
	require.NoError(t, err)

	assert.Equal(t, 3, merged.Nrow())
}

func TestScaleAndCombineOuterKeepsAllSamples(t *testing.T) {
	metab := metabolomicsFixture(t)
	clin := table.FromSeries(
		series.New([]int{1, 2, 3, 999}, series.Int, "public_client_id"),
		series.New([]float64{50, 55, 60, 65}, series.Float, "lab1"),
	)
	require.NoError(t, clin.SetIndex("public_client_id"))

	merged, err := ScaleAndCombineOmics(metab, nil, clin, table.JoinOuter)
	require.NoError(t, err)

	assert.Equal(t, nSamples+1, merged.Nrow())
}

func TestScaleAndCombineRequiresMetabolomics(t *testing.T) {
	_, err := ScaleAndCombineOmics(nil, proteomicsFixture(t), nil, table.JoinInner)
	assert.Error(t, err)
}

func TestScaledFeatureNames(t *testing.T) {
	tb := metabolomicsFixture(t)

	assert.Equal(t, []string{"met1", "met2"}, ScaledFeatureNames(tb, nil))

	custom := ScaledFeatureNames(tb, []string{"shannon", "met1"})
	assert.Equal(t, []string{"met2", "BMI", "Age", "sex"}, custom)
}

func TestScaledFeatureNamesIgnoresAbsentExcludes(t *testing.T) {
	tb := table.FromSeries(
		series.New([]float64{1, 2}, series.Float, "a"),
		series.New([]float64{3, 4}, series.Float, "b"),
	)

	assert.Equal(t, []string{"a", "b"}, ScaledFeatureNames(tb, []string{"zz"}))
}

func TestStandardScalerZeroVariance(t *testing.T) {
	s := NewStandardScaler()
	out := s.FitTransform([][]float64{{5, 5, 5}, {1, 2, 3}})

	assert.Equal(t, []float64{0, 0, 0}, out[0])
	assertMeanStd(t, out[1])
}

func assertMeanStd(t *testing.T, vals []float64) {
	t.Helper()
	assert.InDelta(t, 0, stat.Mean(vals, nil), 1e-10)
	assert.InDelta(t, 1, stat.PopStdDev(vals, nil), 1e-10)
}

func TestStandardScalerTransformWithoutFit(t *testing.T) {
	s := NewStandardScaler()
	in := [][]float64{{1, 2, 3}}
	assert.Equal(t, in, s.Transform(in))
}
