package profile

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("profile not found")
)

// Table: merchant_profiles
type MerchantProfile struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID            string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex" json:"user_id"`
	BusinessName      string    `gorm:"column:business_name;size:255" json:"business_name"`
	BusinessType      string    `gorm:"column:business_type;size:100" json:"business_type,omitempty"`
	GSTNumber         string    `gorm:"column:gst_number;size:32" json:"gst_number,omitempty"`
	PANNumber         string    `gorm:"column:pan_number;size:16" json:"pan_number,omitempty"`
	BankName          string    `gorm:"column:bank_name;size:255" json:"bank_name,omitempty"`
	AccountNumber     string    `gorm:"column:account_number;size:64" json:"account_number,omitempty"`
	IFSCCode          string    `gorm:"column:ifsc_code;size:16" json:"ifsc_code,omitempty"`
	AccountHolderName string    `gorm:"column:account_holder_name;size:255" json:"account_holder_name,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MerchantProfile) TableName() string { return "merchant_profiles" }

// Table: nbfc_profiles
type NBFCProfile struct {
	ID                 uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID             string              `gorm:"column:user_id;type:char(36);not null;uniqueIndex" json:"user_id"`
	Name               string              `gorm:"column:name;size:255" json:"name"`
	RegistrationNumber string              `gorm:"column:registration_number;size:64" json:"registration_number,omitempty"`
	InterestRate       decimal.NullDecimal `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	ProcessingFee      decimal.NullDecimal `gorm:"column:processing_fee;type:decimal(6,2)" json:"processing_fee"`
	MaxLoanAmount      decimal.NullDecimal `gorm:"column:max_loan_amount;type:decimal(18,2)" json:"max_loan_amount"`
	OfficeAddress      string              `gorm:"column:office_address;type:text" json:"office_address,omitempty"`
	ContactNumber      string              `gorm:"column:contact_number;size:32" json:"contact_number,omitempty"`
	OfficialEmail      string              `gorm:"column:official_email;size:255" json:"official_email,omitempty"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NBFCProfile) TableName() string { return "nbfc_profiles" }

type Kind string

const (
	KindNone     Kind = "none"
	KindMerchant Kind = "merchant"
	KindNBFC     Kind = "nbfc"
)

// Detail holds at most one role-specific profile. Kind says which pointer is set.
type Detail struct {
	Kind     Kind             `json:"kind"`
	Merchant *MerchantProfile `json:"merchant,omitempty"`
	NBFC     *NBFCProfile     `json:"nbfc,omitempty"`
}

func None() Detail                         { return Detail{Kind: KindNone} }
func OfMerchant(p *MerchantProfile) Detail { return Detail{Kind: KindMerchant, Merchant: p} }
func OfNBFC(p *NBFCProfile) Detail         { return Detail{Kind: KindNBFC, NBFC: p} }
