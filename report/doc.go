// Package report compares a computed price surface with its reference and
// exports the comparison.
//
// A Table holds the sampled comparison: asset price (and average price for
// Asian surfaces), reference price, numerical price and their difference.
// VanillaTable compares against the Black-Scholes formula; AsianTable compares
// against any N_S × N_A reference, typically analytic.ZeroVolatilityAsian.
//
// Summary reports the worst absolute error over every node, not only the
// sampled ones.
//
// Writers round every number to a fixed number of decimals before output.
// WriteCSV streams to any io.Writer; WriteXLSX produces a spreadsheet with
// one sheet named after the option kind. Write picks the file name
// <kind>_<time nodes>_<asset nodes>[_<average nodes>].<ext> in a directory.
package report
