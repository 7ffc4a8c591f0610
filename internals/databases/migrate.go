package databases

import (
	"fmt"

	"gorm.io/gorm"

	EventModel "eventku_backend/internals/features/events/model"
	NotificationModel "eventku_backend/internals/features/notifications/model"
	RSVPModel "eventku_backend/internals/features/rsvps/model"
	SponsorshipModel "eventku_backend/internals/features/sponsorships/model"
	TicketModel "eventku_backend/internals/features/ticketing/model"
	UserModel "eventku_backend/internals/features/users/model"
	VenueModel "eventku_backend/internals/features/venues/model"
)

// Migrate creates the schema in FK dependency order (leaves first). Unique
// indexes, secondary indexes, CHECK constraints and FK actions all come from
// the model tags.
func Migrate(db *gorm.DB) error {
	ordered := []any{
		// identity cluster
		&UserModel.UserModel{},
		&UserModel.RoleModel{},
		&UserModel.UserRoleModel{},
		// venue cluster
		&VenueModel.VenueModel{},
		&VenueModel.VenueSectionModel{},
		// catalog + event cluster
		&EventModel.EventCategoryModel{},
		&EventModel.EventModel{},
		&EventModel.EventScheduleModel{},
		// transaction clusters
		&TicketModel.TicketTypeModel{},
		&TicketModel.TicketModel{},
		&RSVPModel.RSVPModel{},
		&RSVPModel.EventFeedbackModel{},
		// auxiliary clusters
		&NotificationModel.NotificationModel{},
		&SponsorshipModel.SponsorModel{},
		&SponsorshipModel.SponsorshipTierModel{},
		&SponsorshipModel.EventSponsorModel{},
	}

	for _, m := range ordered {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
