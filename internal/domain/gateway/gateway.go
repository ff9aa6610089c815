package gateway

import (
	"loanadmin-backend/internal/domain/address"
	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/profile"
	"loanadmin-backend/internal/domain/tieup"
	"loanadmin-backend/internal/domain/user"
)

// Gateway bundles the record collections the dashboard reads from and writes to.
// Calls are independent; there is no cross-collection transaction.
type Gateway struct {
	Users        user.Repository
	Loans        loan.Repository
	ProductLoans productloan.Repository
	TieUps       tieup.Repository
	Profiles     profile.Repository
	Addresses    address.Repository
}
