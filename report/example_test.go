package report_test

import (
	"os"

	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/report"
)

// ExampleWriteCSV rounds every value to three decimals.
func ExampleWriteCSV() {
	t := &report.Table{
		Kind:    market.Vanilla,
		Columns: []string{report.ColAssetPrice, report.ColAnalytical, report.ColNumerical, report.ColDifference},
		Rows:    [][]float64{{100, 10.450583572185565, 10.377253738579464, -0.073329833606101}},
	}
	_ = report.WriteCSV(os.Stdout, t, 3)

	// Output:
	// asset_price,analytical_price,numerical_price,difference
	// 100.000,10.451,10.377,-0.073
}
