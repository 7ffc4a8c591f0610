package model

import (
	"time"

	"github.com/lib/pq"
)

// SponsorshipTierModel is static reference data ("Gold", "Silver", ...).
type SponsorshipTierModel struct {
	SponsorshipTierID        int64          `gorm:"column:sponsorship_tier_id;primaryKey;autoIncrement" json:"sponsorship_tier_id"`
	SponsorshipTierName      string         `gorm:"column:sponsorship_tier_name;size:50;not null;uniqueIndex:uq_sponsorship_tiers_name" json:"sponsorship_tier_name"`
	SponsorshipTierMinAmount float64        `gorm:"column:sponsorship_tier_min_amount;type:numeric(12,2);not null;check:chk_sponsorship_tiers_min_amount,sponsorship_tier_min_amount >= 0" json:"sponsorship_tier_min_amount"`
	SponsorshipTierBenefits  pq.StringArray `gorm:"column:sponsorship_tier_benefits;type:text[]" json:"sponsorship_tier_benefits,omitempty"`
	SponsorshipTierCreatedAt time.Time      `gorm:"column:sponsorship_tier_created_at;autoCreateTime" json:"sponsorship_tier_created_at"`
}

func (SponsorshipTierModel) TableName() string {
	return "sponsorship_tiers"
}
