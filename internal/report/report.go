// Package report turns a set of transactions into the cooperative's rollup
// tables: per-category income/expense/balance totals and per-period sums for
// the weekly, monthly and yearly reporting categories.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"kaslele/internal/models"
)

// CategoryTotal is one row of the category rollup. Balance is income minus
// expense; a kind with no transactions counts as zero.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Balance  decimal.Decimal `json:"balance"`
}

// PeriodTotal is the sum of amounts for one (period, kind) group.
type PeriodTotal struct {
	Period string          `json:"period"`
	Kind   models.Kind     `json:"kind"`
	Total  decimal.Decimal `json:"total"`
}

// Rollup is the aggregated view of a transaction listing. Daily transactions
// appear only in the category totals, never in per-period sums.
type Rollup struct {
	Categories []CategoryTotal `json:"categories"`
	Weekly     []PeriodTotal   `json:"weekly"`
	Monthly    []PeriodTotal   `json:"monthly"`
	Yearly     []PeriodTotal   `json:"yearly"`
}

type periodKey struct {
	period string
	kind   models.Kind
}

// Aggregate computes the rollup for records in a single pass. It never
// fails: an empty or nil input yields an empty Rollup. Output rows are
// emitted in a deterministic order (fixed category order, period rows sorted
// by period then kind) so reports and exports are stable.
func Aggregate(records []models.Transaction) Rollup {
	type catSums struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	byCategory := make(map[models.Category]*catSums)
	byPeriod := map[models.Category]map[periodKey]decimal.Decimal{
		models.CategoryWeekly:  {},
		models.CategoryMonthly: {},
		models.CategoryYearly:  {},
	}

	for _, r := range records {
		cs := byCategory[r.Category]
		if cs == nil {
			cs = &catSums{}
			byCategory[r.Category] = cs
		}
		if r.Kind == models.KindIncome {
			cs.income = cs.income.Add(r.Amount)
		} else {
			cs.expense = cs.expense.Add(r.Amount)
		}

		if groups, ok := byPeriod[r.Category]; ok {
			k := periodKey{period: r.Period, kind: r.Kind}
			groups[k] = groups[k].Add(r.Amount)
		}
	}

	var out Rollup
	for _, c := range models.Categories {
		cs, ok := byCategory[c]
		if !ok {
			continue
		}
		out.Categories = append(out.Categories, CategoryTotal{
			Category: c,
			Income:   cs.income,
			Expense:  cs.expense,
			Balance:  cs.income.Sub(cs.expense),
		})
	}
	out.Weekly = periodRows(byPeriod[models.CategoryWeekly])
	out.Monthly = periodRows(byPeriod[models.CategoryMonthly])
	out.Yearly = periodRows(byPeriod[models.CategoryYearly])
	return out
}

func periodRows(groups map[periodKey]decimal.Decimal) []PeriodTotal {
	if len(groups) == 0 {
		return nil
	}
	rows := make([]PeriodTotal, 0, len(groups))
	for k, total := range groups {
		rows = append(rows, PeriodTotal{Period: k.period, Kind: k.kind, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Period != rows[j].Period {
			return rows[i].Period < rows[j].Period
		}
		return rows[i].Kind < rows[j].Kind
	})
	return rows
}
