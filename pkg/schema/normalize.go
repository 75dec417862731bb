package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoRate is returned when a row has none of the RateAliases columns.
	ErrNoRate = errors.New("no rate column (expected one of " + strings.Join(RateAliases, ", ") + ")")

	// ErrMissingField is returned when a required column is absent.
	ErrMissingField = errors.New("missing required column")

	// ErrNonFinite is returned for NaN or infinite numeric values.
	ErrNonFinite = errors.New("value is not a finite number")
)

// FieldError describes a column whose value could not be used.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" && errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%v %q", e.Err, e.Field)
	}
	return fmt.Sprintf("column %q: cannot use value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NormalizeRow builds a Record from a header -> value row.
//
// The rate comes from the first RateAliases column present; hours_worked
// defaults to 0 when the column is absent. Payout is computed here.
func NormalizeRow(fields map[string]string) (Record, error) {
	name, ok := fields[ColumnName]
	if !ok {
		return Record{}, &FieldError{Field: ColumnName, Err: ErrMissingField}
	}
	department, ok := fields[ColumnDepartment]
	if !ok {
		return Record{}, &FieldError{Field: ColumnDepartment, Err: ErrMissingField}
	}

	rateColumn, rawRate, ok := resolveRate(fields)
	if !ok {
		return Record{}, ErrNoRate
	}
	rate, err := parseNumber(rateColumn, rawRate)
	if err != nil {
		return Record{}, err
	}

	var hours float64
	if rawHours, ok := fields[ColumnHoursWorked]; ok {
		hours, err = parseNumber(ColumnHoursWorked, rawHours)
		if err != nil {
			return Record{}, err
		}
	}

	return Record{
		Name:        name,
		Department:  department,
		HoursWorked: hours,
		Rate:        rate,
		RateSource:  rateColumn,
		Payout:      hours * rate,
		Fields:      fields,
	}, nil
}

func parseNumber(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &FieldError{Field: field, Value: value, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Field: field, Value: value, Err: ErrNonFinite}
	}
	return f, nil
}
