package tieup

import "context"

type Repository interface {
	// MerchantIDs returns the distinct merchants that have at least one NBFC tie-up.
	MerchantIDs(ctx context.Context) ([]string, error)
}
