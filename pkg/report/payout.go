package report

import (
	"payreport/pkg/engine"
	"payreport/pkg/schema"
)

// PayoutEntry is one employee line of the payout report.
//
// Hours and Rate are truncated toward zero for display; Payout keeps full
// precision and is what the totals add up.
type PayoutEntry struct {
	Name   string  `json:"name"`
	Hours  int64   `json:"hours"`
	Rate   int64   `json:"rate"`
	Payout float64 `json:"payout"`
}

// Totals is a subtotal or grand-total line.
type Totals struct {
	Hours  int64   `json:"hours"`
	Payout float64 `json:"payout"`
}

// DepartmentBlock is the section printed for one department.
type DepartmentBlock struct {
	Department string        `json:"department"`
	Entries    []PayoutEntry `json:"entries"`
	Subtotal   Totals        `json:"subtotal"`
}

// PayoutReport is the compiled payout report.
type PayoutReport struct {
	Departments []DepartmentBlock `json:"departments"`
	GrandTotal  Totals            `json:"grandTotal"`
}

// BuildPayoutReport groups records by department and computes subtotals and
// the grand total. Subtotal hours add the truncated per-row hours.
func BuildPayoutReport(records []schema.Record) *PayoutReport {
	index := engine.BuildDepartmentIndex(records)
	report := &PayoutReport{
		Departments: make([]DepartmentBlock, 0, len(index.Order)),
	}

	for _, dept := range index.Order {
		block := DepartmentBlock{Department: dept}
		for _, rec := range index.Members(dept) {
			entry := PayoutEntry{
				Name:   rec.Name,
				Hours:  int64(rec.HoursWorked),
				Rate:   int64(rec.Rate),
				Payout: rec.Payout,
			}
			block.Entries = append(block.Entries, entry)
			block.Subtotal.Hours += entry.Hours
			block.Subtotal.Payout += entry.Payout
		}

		report.Departments = append(report.Departments, block)
		report.GrandTotal.Hours += block.Subtotal.Hours
		report.GrandTotal.Payout += block.Subtotal.Payout
	}

	return report
}
