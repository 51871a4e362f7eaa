// Package report derives the spending summaries shown on the overview
// pages. Everything runs on decimals; amounts never pass through binary
// floats.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/linhares06/expensetracker-app/internal/ledger"
)

// UndefinedCategory labels spending whose expense carries no category
// name, either because none was chosen or the category was deleted
// before the name snapshot was taken.
const UndefinedCategory = "Undefined category"

// SpendingByCategory groups expense amounts under their snapshotted
// category names. Labels come out in first-seen order, and the two
// slices are parallel so they can feed the chart directly.
func SpendingByCategory(expenses []ledger.Expense) ([]string, []decimal.Decimal) {
	var (
		labels []string
		totals []decimal.Decimal
	)

	index := make(map[string]int)

	for _, e := range expenses {
		label := e.CategoryName
		if label == "" {
			label = UndefinedCategory
		}

		i, ok := index[label]
		if !ok {
			i = len(labels)
			index[label] = i
			labels = append(labels, label)
			totals = append(totals, decimal.Zero)
		}

		totals[i] = totals[i].Add(e.Amount.Decimal())
	}

	return labels, totals
}

// CategoryBudget is one row of the remaining-budget table.
type CategoryBudget struct {
	Name      string
	Remaining ledger.Money
	// PercentLeft is the share of the budget still unspent, rendered
	// like "70.00%". A zero budget reports "0.00%" rather than dividing.
	PercentLeft string
}

// RemainingBudget reports, for every category in input order, how much
// of its budget is left. Spending is attributed by the snapshotted
// category name, so expenses recorded before a rename stay under the
// old name and stop counting against the renamed category. Overspent
// categories go negative.
func RemainingBudget(categories []ledger.Category, expenses []ledger.Expense) []CategoryBudget {
	hundred := decimal.NewFromInt(100)

	spentByName := make(map[string]decimal.Decimal, len(categories))

	for _, e := range expenses {
		name := e.CategoryName
		if name == "" {
			name = UndefinedCategory
		}

		spentByName[name] = spentByName[name].Add(e.Amount.Decimal())
	}

	budgets := make([]CategoryBudget, 0, len(categories))

	for _, c := range categories {
		spent := spentByName[c.Name]
		budget := c.Budget.Decimal()

		percent := decimal.Zero
		if !budget.IsZero() {
			percent = hundred.Sub(spent.Div(budget).Mul(hundred))
		}

		budgets = append(budgets, CategoryBudget{
			Name:        c.Name,
			Remaining:   ledger.NewMoney(budget.Sub(spent)),
			PercentLeft: percent.StringFixed(2) + "%",
		})
	}

	return budgets
}

// Total sums every expense.
func Total(expenses []ledger.Expense) ledger.Money {
	total := decimal.Zero

	for _, e := range expenses {
		total = total.Add(e.Amount.Decimal())
	}

	return ledger.NewMoney(total)
}
