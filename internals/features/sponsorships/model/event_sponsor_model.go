package model

import (
	"time"

	EventModel "eventku_backend/internals/features/events/model"
)

// EventSponsorModel joins events, sponsors and tiers. Composite identity
// (event, sponsor): a sponsor holds at most one tier per event. The event
// owns the row (cascade); sponsor and tier deletions are restricted to keep
// sponsorship history intact.
type EventSponsorModel struct {
	EventSponsorEventID   int64 `gorm:"column:event_sponsor_event_id;primaryKey;autoIncrement:false" json:"event_sponsor_event_id"`
	EventSponsorSponsorID int64 `gorm:"column:event_sponsor_sponsor_id;primaryKey;autoIncrement:false" json:"event_sponsor_sponsor_id"`
	EventSponsorTierID    int64 `gorm:"column:event_sponsor_tier_id;not null;index:idx_event_sponsors_tier" json:"event_sponsor_tier_id"`

	EventSponsorAmount        float64 `gorm:"column:event_sponsor_amount;type:numeric(12,2);not null;check:chk_event_sponsors_amount,event_sponsor_amount >= 0" json:"event_sponsor_amount"`
	EventSponsorAgreementText *string `gorm:"column:event_sponsor_agreement_text;type:text" json:"event_sponsor_agreement_text,omitempty"`

	EventSponsorCreatedAt time.Time `gorm:"column:event_sponsor_created_at;autoCreateTime" json:"event_sponsor_created_at"`

	Event   EventModel.EventModel `gorm:"foreignKey:EventSponsorEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	Sponsor SponsorModel          `gorm:"foreignKey:EventSponsorSponsorID;references:SponsorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sponsor,omitempty"`
	Tier    SponsorshipTierModel  `gorm:"foreignKey:EventSponsorTierID;references:SponsorshipTierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"tier,omitempty"`
}

func (EventSponsorModel) TableName() string {
	return "event_sponsors"
}
