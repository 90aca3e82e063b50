package projection

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// CashFlowCSVHeader is the fixed export header. Downstream consumers key on
// these exact column names and their order.
var CashFlowCSVHeader = []string{
	"Year",
	"Revenue",
	"Aggregator Fee",
	"OPEX",
	"EBITDA",
	"Debt Service",
	"Net Cash Flow",
	"Cumulative",
}

// WriteCashFlowCSV writes the display ledger as CSV.
func WriteCashFlowCSV(w io.Writer, years []CashFlowYear) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CashFlowCSVHeader); err != nil {
		return err
	}
	for _, y := range years {
		row := []string{
			strconv.Itoa(y.Year),
			fmtAmount(y.Revenue),
			fmtAmount(y.AggregatorFee),
			fmtAmount(y.Opex),
			fmtAmount(y.EBITDA),
			fmtAmount(y.DebtService),
			fmtAmount(y.NetCashFlow),
			fmtAmount(y.CumulativeCashFlow),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCashFlowCSVFile writes the ledger CSV to a file path.
func WriteCashFlowCSVFile(path string, years []CashFlowYear) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCashFlowCSV(f, years)
}

// Ledger values are rounded to whole currency units already; format them
// without a fractional part.
func fmtAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', 0, 64)
}
