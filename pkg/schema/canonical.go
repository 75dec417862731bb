package schema

// Record is one employee row after normalization.
//
// Payout is fixed when the record is built and never recomputed.
type Record struct {
	Name        string            `json:"name"`
	Department  string            `json:"department"`
	HoursWorked float64           `json:"hoursWorked"`
	Rate        float64           `json:"rate"`
	RateSource  string            `json:"rateSource"`
	Payout      float64           `json:"payout"`
	Fields      map[string]string `json:"fields"`
	SourceFile  string            `json:"sourceFile"`
	SourceRow   int               `json:"sourceRow"`
}
