package loan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func withStatus(statuses ...Status) []Loan {
	out := make([]Loan, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Loan{Status: s})
	}
	return out
}

func TestComputeStats_Scenario(t *testing.T) {
	got := ComputeStats(withStatus(StatusPending, StatusPending, StatusAccepted, StatusDisbursed))
	want := Stats{Total: 4, Pending: 2, Accepted: 1, Verified: 0, Disbursed: 1, Rejected: 0}
	want.Volume = decimal.Zero
	if !statsEqual(got, want) {
		t.Fatalf("ComputeStats = %+v, want %+v", got, want)
	}
}

func TestComputeStats_ExactMatchOnly(t *testing.T) {
	got := ComputeStats(withStatus("pending", "PENDING", "Disbursed", StatusVerified, StatusRejected, ""))
	if got.Total != 6 || got.Pending != 0 || got.Disbursed != 0 || got.Verified != 1 || got.Rejected != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if named := got.Pending + got.Accepted + got.Verified + got.Disbursed + got.Rejected; named > got.Total {
		t.Fatalf("named buckets %d exceed total %d", named, got.Total)
	}
}

func TestComputeStats_Volume(t *testing.T) {
	rows := []Loan{
		{Status: StatusPending, LoanAmount: decimal.NewNullDecimal(decimal.RequireFromString("1000.25"))},
		{Status: StatusAccepted, LoanAmount: decimal.NewNullDecimal(decimal.RequireFromString("99.75"))},
		{Status: StatusAccepted},
	}
	got := ComputeStats(rows)
	if !got.Volume.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("Volume = %s, want 1100", got.Volume)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	got := ComputeStats([]Loan(nil))
	if got.Total != 0 || !got.Volume.IsZero() {
		t.Fatalf("empty stats = %+v", got)
	}
}

func statsEqual(a, b Stats) bool {
	return a.Total == b.Total && a.Pending == b.Pending && a.Accepted == b.Accepted &&
		a.Verified == b.Verified && a.Disbursed == b.Disbursed && a.Rejected == b.Rejected &&
		a.Volume.Equal(b.Volume)
}
