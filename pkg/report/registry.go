package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"payreport/pkg/schema"
)

// ErrUnsupportedReport is returned by Lookup for an unknown report type.
var ErrUnsupportedReport = errors.New("unsupported report type")

// Generator writes one kind of report for a set of records.
type Generator func(w io.Writer, records []schema.Record) error

var generators = map[string]Generator{
	"payout": WritePayout,
}

// Lookup returns the generator registered under name, ignoring case.
func Lookup(name string) (Generator, error) {
	gen, ok := generators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedReport, name, strings.Join(Types(), ", "))
	}
	return gen, nil
}

// Types returns the registered report names, sorted.
func Types() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WritePayout builds the payout report for records and renders it to w.
func WritePayout(w io.Writer, records []schema.Record) error {
	return Render(w, BuildPayoutReport(records))
}
