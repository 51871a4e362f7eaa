package statement

import "github.com/shopspring/decimal"

// amountMode determines how amounts are pulled out of a row.
type amountMode int

const (
	// amountSingle means one amount column.
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// profile describes the column layout of one statement export format.
// Supporting another bank is just another entry in the profiles slice.
type profile struct {
	name       string
	dateCol    string
	descCol    string
	dateLayout string

	mode      amountMode
	amountCol string // amountSingle
	debitCol  string // amountSplit
	creditCol string // amountSplit

	// decimalComma marks European number formatting ("1.234,56").
	decimalComma bool
	// signed marks single-column layouts where negative means spending
	// and positive means money in. Unsigned layouts list spending as
	// positive amounts only.
	signed bool
}

// profiles is the ordered list of known export formats. The split-column
// card layout shares header names with the account layout, so the more
// specific profile comes first.
var profiles = []profile{
	{
		name:         "card statement",
		dateCol:      "Date",
		descCol:      "Description",
		dateLayout:   "02-01-2006",
		mode:         amountSplit,
		debitCol:     "Debit",
		creditCol:    "Credit",
		decimalComma: true,
	},
	{
		name:         "account statement",
		dateCol:      "Date",
		descCol:      "Description",
		dateLayout:   "02-01-2006",
		mode:         amountSingle,
		amountCol:    "Amount",
		decimalComma: true,
		signed:       true,
	},
	{
		name:       "tracker export",
		dateCol:    "date",
		descCol:    "description",
		dateLayout: "2006-01-02",
		mode:       amountSingle,
		amountCol:  "amount",
	},
}

func (p profile) requiredCols() []string {
	cols := []string{p.dateCol, p.descCol}

	switch p.mode {
	case amountSingle:
		cols = append(cols, p.amountCol)
	case amountSplit:
		cols = append(cols, p.debitCol, p.creditCol)
	}

	return cols
}

func (p profile) matches(cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// amount extracts the row's amount and direction. The third return is
// false for rows that carry no usable amount (zero, blank, or credits in
// unsigned layouts), which callers skip.
func (p *profile) amount(cols colIndex, row []string) (decimal.Decimal, bool, bool) {
	if p.mode == amountSplit {
		if s := cellValue(row, cols[p.debitCol]); s != "" {
			if d, err := parseAmount(s, p.decimalComma); err == nil && !d.IsZero() {
				return d.Abs(), false, true
			}
		}

		if s := cellValue(row, cols[p.creditCol]); s != "" {
			if d, err := parseAmount(s, p.decimalComma); err == nil && !d.IsZero() {
				return d.Abs(), true, true
			}
		}

		return decimal.Zero, false, false
	}

	s := cellValue(row, cols[p.amountCol])
	if s == "" {
		return decimal.Zero, false, false
	}

	d, err := parseAmount(s, p.decimalComma)
	if err != nil || d.IsZero() {
		return decimal.Zero, false, false
	}

	if p.signed {
		if d.IsNegative() {
			return d.Abs(), false, true
		}

		return d, true, true
	}

	if d.IsNegative() {
		return decimal.Zero, false, false
	}

	return d, false, true
}
