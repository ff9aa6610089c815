package tieup

import "time"

// Table: merchant_tieups (merchant to NBFC linkage)
type TieUp struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MerchantID string    `gorm:"column:merchant_id;type:char(36);not null;index" json:"merchant_id"`
	NBFCID     string    `gorm:"column:nbfc_id;type:char(36);not null;index" json:"nbfc_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TieUp) TableName() string { return "merchant_tieups" }
