package address

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("address not found")
)

// Table: addresses
type Address struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          string    `gorm:"column:user_id;type:char(36);not null;index" json:"user_id"`
	IsDefault       bool      `gorm:"column:is_default" json:"is_default"`
	ExtendedAddress string    `gorm:"column:extended_address;size:255" json:"extended_address,omitempty"`
	Line1           string    `gorm:"column:line1;size:255" json:"line1,omitempty"`
	Line2           string    `gorm:"column:line2;size:255" json:"line2,omitempty"`
	City            string    `gorm:"column:city;size:100" json:"city,omitempty"`
	State           string    `gorm:"column:state;size:100" json:"state,omitempty"`
	PostalCode      string    `gorm:"column:postal_code;size:20" json:"postal_code,omitempty"`
	Phone           string    `gorm:"column:phone;size:32" json:"phone,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Address) TableName() string { return "addresses" }

// Formatted joins the non-empty parts with ", ".
func (a Address) Formatted() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.ExtendedAddress, a.Line1, a.Line2, a.City, a.State, a.PostalCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
