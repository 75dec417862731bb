package schema

// Column names read from the input header.
const (
	ColumnName        = "name"
	ColumnDepartment  = "department"
	ColumnHoursWorked = "hours_worked"
)

// RateAliases lists the columns that can carry the hourly rate, highest
// priority first. The first one present in a row wins.
var RateAliases = []string{"hourly_rate", "rate", "salary"}

// resolveRate returns the alias column and raw value supplying the rate.
func resolveRate(fields map[string]string) (column, value string, ok bool) {
	for _, alias := range RateAliases {
		if v, present := fields[alias]; present {
			return alias, v, true
		}
	}
	return "", "", false
}
