package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("loan not found")
)

// Status is free text in the store; only these values are bucketed.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusVerified  Status = "Verified"
	StatusDisbursed Status = "Loan Disbursed"
	StatusRejected  Status = "Rejected"
)

// Table: loans
type Loan struct {
	ID                 string              `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ApplicationNumber  string              `gorm:"column:application_number;size:64" json:"application_number,omitempty"`
	FirstName          string              `gorm:"column:first_name;size:100" json:"first_name"`
	LastName           string              `gorm:"column:last_name;size:100" json:"last_name"`
	LoanAmount         decimal.NullDecimal `gorm:"column:loan_amount;type:decimal(18,2)" json:"loan_amount"`
	Status             Status              `gorm:"column:status;size:32;index" json:"status"`
	VerificationStatus string              `gorm:"column:verification_status;size:32" json:"verification_status,omitempty"`
	UserID             string              `gorm:"column:user_id;type:char(36);index" json:"user_id,omitempty"`
	MerchantID         string              `gorm:"column:merchant_id;type:char(36);index" json:"merchant_id,omitempty"`
	DateOfBirth        string              `gorm:"column:date_of_birth;size:10" json:"-"`
	Phone              string              `gorm:"column:phone;size:32" json:"-"`
	Mobile             string              `gorm:"column:mobile;size:32" json:"-"`
	ApplicantAddress   string              `gorm:"column:applicant_address;type:text" json:"-"`
	Email              string              `gorm:"column:email;size:255" json:"-"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string { return "loans" }

func (l Loan) LoanStatus() Status { return l.Status }

func (l Loan) Amount() decimal.Decimal {
	if l.LoanAmount.Valid {
		return l.LoanAmount.Decimal
	}
	return decimal.Zero
}

// Contact is the applicant data a loan application carries about its borrower.
type Contact struct {
	DateOfBirth string
	Phone       string
	Mobile      string
	Address     string
	Email       string
}

func (l Loan) Contact() Contact {
	return Contact{DateOfBirth: l.DateOfBirth, Phone: l.Phone, Mobile: l.Mobile, Address: l.ApplicantAddress, Email: l.Email}
}
