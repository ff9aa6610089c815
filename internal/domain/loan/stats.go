package loan

import "github.com/shopspring/decimal"

// Row is anything carrying a pipeline status and an amount.
type Row interface {
	LoanStatus() Status
	Amount() decimal.Decimal
}

type Stats struct {
	Total     int             `json:"total"`
	Pending   int             `json:"pending"`
	Accepted  int             `json:"accepted"`
	Verified  int             `json:"verified"`
	Disbursed int             `json:"disbursed"`
	Rejected  int             `json:"rejected"`
	Volume    decimal.Decimal `json:"volume"`
}

// ComputeStats buckets rows by exact status. Unknown statuses only count towards Total.
func ComputeStats[R Row](rows []R) Stats {
	s := Stats{Total: len(rows), Volume: decimal.Zero}
	for _, r := range rows {
		switch r.LoanStatus() {
		case StatusPending:
			s.Pending++
		case StatusAccepted:
			s.Accepted++
		case StatusVerified:
			s.Verified++
		case StatusDisbursed:
			s.Disbursed++
		case StatusRejected:
			s.Rejected++
		}
		s.Volume = s.Volume.Add(r.Amount())
	}
	return s
}
