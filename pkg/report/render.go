package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column widths of the payout table.
const (
	nameWidth   = 22
	hoursWidth  = 5
	rateWidth   = 5
	payoutWidth = 8
)

// amountPrinter groups thousands with commas.
var amountPrinter = message.NewPrinter(language.English)

// Render writes the text form of r to w.
func Render(w io.Writer, r *PayoutReport) error {
	var buf bytes.Buffer

	for _, block := range r.Departments {
		fmt.Fprintln(&buf, block.Department)
		fmt.Fprintln(&buf, strings.Repeat("-", utf8.RuneCountInString(block.Department)))

		fmt.Fprintf(&buf, "%-*s %*s %*s %*s\n",
			nameWidth, "name", hoursWidth, "hours", rateWidth, "rate", payoutWidth, "payout")
		fmt.Fprintf(&buf, "%s %s %s %s\n",
			strings.Repeat("-", nameWidth), strings.Repeat("-", hoursWidth),
			strings.Repeat("-", rateWidth), strings.Repeat("-", payoutWidth))

		for _, e := range block.Entries {
			fmt.Fprintf(&buf, "%-*s %*d %*d %s\n",
				nameWidth, e.Name, hoursWidth, e.Hours, rateWidth, e.Rate, formatPayout(e.Payout))
		}

		writeTotals(&buf, block.Subtotal)
		fmt.Fprintln(&buf)
	}

	writeTotals(&buf, r.GrandTotal)

	_, err := w.Write(buf.Bytes())
	return err
}

// writeTotals prints a line with the name and rate columns left blank.
func writeTotals(buf *bytes.Buffer, t Totals) {
	fmt.Fprintf(buf, "%-*s %*d %*s %s\n",
		nameWidth, "", hoursWidth, t.Hours, rateWidth, "", formatPayout(t.Payout))
}

// formatPayout renders "$" followed by the amount rounded half to even,
// grouped by thousands and right-aligned so the column is payoutWidth wide.
func formatPayout(amount float64) string {
	return fmt.Sprintf("$%*s", payoutWidth-1, formatAmount(amount))
}

func formatAmount(amount float64) string {
	rounded := math.RoundToEven(amount)
	if rounded == 0 && math.Signbit(rounded) {
		return "-0"
	}
	return amountPrinter.Sprintf("%d", int64(rounded))
}
