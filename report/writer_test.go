package report_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/report"
)

func sampleTable() *report.Table {
	return &report.Table{
		Kind:    market.Vanilla,
		Shape:   []int{100, 41},
		Columns: []string{report.ColAssetPrice, report.ColAnalytical, report.ColNumerical, report.ColDifference},
		Rows: [][]float64{
			{0, 0, 0, 0},
			{100, 10.450583572185565, 10.398952950435415, -0.05163062175015},
			{200, 104.87705754992859, math.Inf(1), math.NaN()},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleTable(), 2))

	want := "asset_price,analytical_price,numerical_price,difference\n" +
		"0.00,0.00,0.00,0.00\n" +
		"100.00,10.45,10.40,-0.05\n" +
		"200.00,104.88,+Inf,NaN\n"
	assert.Equal(t, want, buf.String())
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "vanilla_100_41.csv", report.FileName(sampleTable(), report.CSV))

	asian := &report.Table{Kind: market.Asian, Shape: []int{110, 41, 41}}
	assert.Equal(t, "asian_110_41_41.xlsx", report.FileName(asian, report.XLSX))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	f, err := report.ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, report.XLSX, f)

	f, err = report.ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, report.CSV, f)

	_, err = report.ParseFormat("xls")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWrite_CSVFile(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "results")

	path, err := report.Write(dir, sampleTable(), report.CSV, 4)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vanilla_100_41.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "100.0000,10.4506,10.3990,-0.0516\n")

	_, err = report.Write(dir, sampleTable(), report.Format("pdf"), 4)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWrite_XLSXFile(t *testing.T) {
	t.Parallel()
	path, err := report.Write(t.TempDir(), sampleTable(), report.XLSX, 4)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"vanilla"}, f.GetSheetList())
	rows, err := f.GetRows("vanilla")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, sampleTable().Columns, rows[0])
	assert.Equal(t, "100", rows[2][0])
	assert.Equal(t, "+Inf", rows[3][2])
	assert.Equal(t, "NaN", rows[3][3])
}
