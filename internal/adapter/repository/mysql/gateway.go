package mysql

import (
	"loanadmin-backend/internal/domain/gateway"

	"gorm.io/gorm"
)

// NewGateway wires every gorm repository onto one connection.
func NewGateway(db *gorm.DB) gateway.Gateway {
	return gateway.Gateway{
		Users:        NewUserRepository(db),
		Loans:        NewLoanRepository(db),
		ProductLoans: NewProductLoanRepository(db),
		TieUps:       NewTieUpRepository(db),
		Profiles:     NewProfileRepository(db),
		Addresses:    NewAddressRepository(db),
	}
}
