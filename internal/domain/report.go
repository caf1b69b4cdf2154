package domain

import "github.com/shopspring/decimal"

// Period selects the reporting window a report was generated for.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodCustom  Period = "custom"
)

// ChartType selects how the presentation layer should render a report.
type ChartType string

const (
	ChartTypeBar  ChartType = "bar"
	ChartTypePie  ChartType = "pie"
	ChartTypeLine ChartType = "line"
)

// UncategorizedBucket is the summary key used for bills whose category
// reference no longer resolves to a name.
const UncategorizedBucket = "Uncategorized"

// Report is a derived aggregation of bills by category name. Reports are
// never persisted; they are recomputed from the ledger on demand. Income and
// expense totals are split by amount sign, not by category type.
type Report struct {
	Period          Period                     `json:"period"`
	ChartType       ChartType                  `json:"chartType"`
	CategorySummary map[string]decimal.Decimal `json:"categorySummary"`
	TotalIncome     decimal.Decimal            `json:"totalIncome"`
	TotalExpense    decimal.Decimal            `json:"totalExpense"`
}
