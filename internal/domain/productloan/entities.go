package productloan

import (
	"errors"
	"time"

	"loanadmin-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product loan not found")
)

// Table: product_loans
type ProductLoan struct {
	ID                 string              `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ApplicationNumber  string              `gorm:"column:application_number;size:64" json:"application_number,omitempty"`
	ProductName        string              `gorm:"column:product_name;size:255" json:"product_name"`
	FirstName          string              `gorm:"column:first_name;size:100" json:"first_name"`
	LastName           string              `gorm:"column:last_name;size:100" json:"last_name"`
	LoanAmount         decimal.NullDecimal `gorm:"column:loan_amount;type:decimal(18,2)" json:"-"`
	TotalAmount        decimal.NullDecimal `gorm:"column:total_amount;type:decimal(18,2)" json:"-"`
	Status             loan.Status         `gorm:"column:status;size:32;index" json:"status"`
	VerificationStatus string              `gorm:"column:verification_status;size:32" json:"verification_status,omitempty"`
	UserID             string              `gorm:"column:user_id;type:char(36);index" json:"user_id,omitempty"`
	MerchantID         string              `gorm:"column:merchant_id;type:char(36);index" json:"merchant_id"`
	DateOfBirth        string              `gorm:"column:date_of_birth;size:10" json:"-"`
	Phone              string              `gorm:"column:phone;size:32" json:"-"`
	Mobile             string              `gorm:"column:mobile;size:32" json:"-"`
	ApplicantAddress   string              `gorm:"column:applicant_address;type:text" json:"-"`
	Email              string              `gorm:"column:email;size:255" json:"-"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductLoan) TableName() string { return "product_loans" }

func (p ProductLoan) LoanStatus() loan.Status { return p.Status }

// Amount prefers loan_amount and falls back to total_amount.
func (p ProductLoan) Amount() decimal.Decimal {
	switch {
	case p.LoanAmount.Valid:
		return p.LoanAmount.Decimal
	case p.TotalAmount.Valid:
		return p.TotalAmount.Decimal
	}
	return decimal.Zero
}

func (p ProductLoan) Contact() loan.Contact {
	return loan.Contact{DateOfBirth: p.DateOfBirth, Phone: p.Phone, Mobile: p.Mobile, Address: p.ApplicantAddress, Email: p.Email}
}
