package databases_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	EventModel "eventku_backend/internals/features/events/model"
	NotificationModel "eventku_backend/internals/features/notifications/model"
	RSVPModel "eventku_backend/internals/features/rsvps/model"
	SponsorshipModel "eventku_backend/internals/features/sponsorships/model"
	TicketModel "eventku_backend/internals/features/ticketing/model"
	UserModel "eventku_backend/internals/features/users/model"
	VenueModel "eventku_backend/internals/features/venues/model"
	helper "eventku_backend/internals/helpers"
	"eventku_backend/internals/testutil"

	"github.com/google/uuid"
)

func seedUser(t *testing.T, db *gorm.DB, n int) *UserModel.UserModel {
	t.Helper()
	u := &UserModel.UserModel{
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "x",
		FullName:     fmt.Sprintf("User %d", n),
		IsActive:     true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *EventModel.EventCategoryModel {
	t.Helper()
	c := &EventModel.EventCategoryModel{EventCategoryName: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedVenue(t *testing.T, db *gorm.DB) *VenueModel.VenueModel {
	t.Helper()
	v := &VenueModel.VenueModel{
		VenueName:     "Main Hall",
		VenueAddress:  "1 Center St",
		VenueCity:     "Springfield",
		VenueCountry:  "US",
		VenueCapacity: 500,
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	return v
}

func seedSponsorship(t *testing.T, db *gorm.DB, sponsorName, tierName string) (*SponsorshipModel.SponsorModel, *SponsorshipModel.SponsorshipTierModel) {
	t.Helper()
	sponsor := &SponsorshipModel.SponsorModel{SponsorName: sponsorName}
	if err := db.Create(sponsor).Error; err != nil {
		t.Fatalf("seed sponsor: %v", err)
	}
	tier := &SponsorshipModel.SponsorshipTierModel{SponsorshipTierName: tierName, SponsorshipTierMinAmount: 1000}
	if err := db.Create(tier).Error; err != nil {
		t.Fatalf("seed tier: %v", err)
	}
	return sponsor, tier
}

func seedEvent(t *testing.T, db *gorm.DB, organizer, category int64, venue *int64) *EventModel.EventModel {
	t.Helper()
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	e := &EventModel.EventModel{
		EventOrganizerID:   organizer,
		EventCategoryID:    category,
		EventVenueID:       venue,
		EventTitle:         "Conference",
		EventDescription:   "Annual conference",
		EventStartDatetime: start,
		EventEndDatetime:   start.Add(8 * time.Hour),
		EventStatus:        constants.EventStatusPublished,
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}

func TestUniqueConstraints(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.Reset(t, db)

	u := seedUser(t, db, 1)

	t.Run("duplicate email", func(t *testing.T) {
		dup := &UserModel.UserModel{
			Username:     "someoneelse",
			Email:        u.Email,
			PasswordHash: "x",
			FullName:     "Someone Else",
		}
		err := helper.TranslateDBError(db.Create(dup).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := &UserModel.UserModel{
			Username:     u.Username,
			Email:        "fresh@example.com",
			PasswordHash: "x",
			FullName:     "Fresh",
		}
		err := helper.TranslateDBError(db.Create(dup).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("duplicate rsvp per event and user", func(t *testing.T) {
		cat := seedCategory(t, db, "conf")
		event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)

		first := &RSVPModel.RSVPModel{RSVPEventID: event.EventID, RSVPUserID: u.ID, RSVPResponse: constants.RSVPConfirmed}
		if err := db.Create(first).Error; err != nil {
			t.Fatalf("first rsvp: %v", err)
		}
		second := &RSVPModel.RSVPModel{RSVPEventID: event.EventID, RSVPUserID: u.ID, RSVPResponse: constants.RSVPWaitlisted}
		err := helper.TranslateDBError(db.Create(second).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("duplicate feedback per event and user", func(t *testing.T) {
		cat := seedCategory(t, db, "meetup")
		event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)

		first := &RSVPModel.EventFeedbackModel{EventFeedbackEventID: event.EventID, EventFeedbackUserID: u.ID, EventFeedbackRating: 4}
		if err := db.Create(first).Error; err != nil {
			t.Fatalf("first feedback: %v", err)
		}
		second := &RSVPModel.EventFeedbackModel{EventFeedbackEventID: event.EventID, EventFeedbackUserID: u.ID, EventFeedbackRating: 2}
		err := helper.TranslateDBError(db.Create(second).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("duplicate sponsor per event", func(t *testing.T) {
		cat := seedCategory(t, db, "expo")
		event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)
		sponsor, tier := seedSponsorship(t, db, "Acme Corp", "Gold")

		first := &SponsorshipModel.EventSponsorModel{
			EventSponsorEventID:   event.EventID,
			EventSponsorSponsorID: sponsor.SponsorID,
			EventSponsorTierID:    tier.SponsorshipTierID,
			EventSponsorAmount:    5000,
		}
		if err := db.Create(first).Error; err != nil {
			t.Fatalf("first sponsorship: %v", err)
		}
		second := &SponsorshipModel.EventSponsorModel{
			EventSponsorEventID:   event.EventID,
			EventSponsorSponsorID: sponsor.SponsorID,
			EventSponsorTierID:    tier.SponsorshipTierID,
			EventSponsorAmount:    7500,
		}
		err := helper.TranslateDBError(db.Create(second).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("duplicate role assignment", func(t *testing.T) {
		role := &UserModel.RoleModel{RoleName: "organizer"}
		if err := db.Create(role).Error; err != nil {
			t.Fatalf("seed role: %v", err)
		}
		link := &UserModel.UserRoleModel{UserRoleUserID: u.ID, UserRoleRoleID: role.RoleID}
		if err := db.Create(link).Error; err != nil {
			t.Fatalf("first assignment: %v", err)
		}
		err := helper.TranslateDBError(db.Create(&UserModel.UserRoleModel{
			UserRoleUserID: u.ID, UserRoleRoleID: role.RoleID,
		}).Error)
		if !errors.Is(err, helper.ErrDuplicateKey) {
			t.Fatalf("err = %v, want ErrDuplicateKey", err)
		}
	})
}

func TestCheckConstraints(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.Reset(t, db)

	u := seedUser(t, db, 1)
	cat := seedCategory(t, db, "conf")
	event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)

	t.Run("rating above five", func(t *testing.T) {
		err := db.Exec(
			"INSERT INTO event_feedbacks (event_feedback_event_id, event_feedback_user_id, event_feedback_rating) VALUES (?, ?, ?)",
			event.EventID, u.ID, 6,
		).Error
		if err := helper.TranslateDBError(err); !errors.Is(err, helper.ErrConstraintViolation) {
			t.Fatalf("err = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("event ends before it starts", func(t *testing.T) {
		start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		bad := &EventModel.EventModel{
			EventOrganizerID:   u.ID,
			EventCategoryID:    cat.EventCategoryID,
			EventTitle:         "Backwards",
			EventDescription:   "ends before it starts",
			EventStartDatetime: start,
			EventEndDatetime:   start.Add(-time.Hour),
			EventStatus:        constants.EventStatusDraft,
		}
		err := helper.TranslateDBError(db.Create(bad).Error)
		if !errors.Is(err, helper.ErrConstraintViolation) {
			t.Fatalf("err = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("negative venue capacity", func(t *testing.T) {
		bad := &VenueModel.VenueModel{
			VenueName:     "Broom closet",
			VenueAddress:  "2 Side St",
			VenueCity:     "Springfield",
			VenueCountry:  "US",
			VenueCapacity: -1,
		}
		err := helper.TranslateDBError(db.Create(bad).Error)
		if !errors.Is(err, helper.ErrConstraintViolation) {
			t.Fatalf("err = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("oversold counter rejected by schema", func(t *testing.T) {
		tt := &TicketModel.TicketTypeModel{
			TicketTypeEventID:           event.EventID,
			TicketTypeName:              "GA",
			TicketTypeQuantityAvailable: 10,
			TicketTypeSalesStart:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			TicketTypeSalesEnd:          time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
			TicketTypeMaxPerUser:        4,
		}
		if err := db.Create(tt).Error; err != nil {
			t.Fatalf("seed ticket type: %v", err)
		}
		err := db.Model(&TicketModel.TicketTypeModel{}).
			Where("ticket_type_id = ?", tt.TicketTypeID).
			UpdateColumn("ticket_type_quantity_sold", 11).Error
		if err := helper.TranslateDBError(err); !errors.Is(err, helper.ErrConstraintViolation) {
			t.Fatalf("err = %v, want ErrConstraintViolation", err)
		}
	})
}

func TestReferentialActions(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.Reset(t, db)

	u := seedUser(t, db, 1)
	cat := seedCategory(t, db, "conf")

	t.Run("missing organizer rejected", func(t *testing.T) {
		start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		orphan := &EventModel.EventModel{
			EventOrganizerID:   999999,
			EventCategoryID:    cat.EventCategoryID,
			EventTitle:         "Orphan",
			EventDescription:   "no such organizer",
			EventStartDatetime: start,
			EventEndDatetime:   start.Add(time.Hour),
			EventStatus:        constants.EventStatusDraft,
		}
		err := helper.TranslateDBError(db.Create(orphan).Error)
		if !errors.Is(err, helper.ErrReferentialViolation) {
			t.Fatalf("err = %v, want ErrReferentialViolation", err)
		}
	})

	t.Run("venue delete cascades sections", func(t *testing.T) {
		venue := seedVenue(t, db)
		section := &VenueModel.VenueSectionModel{
			VenueSectionVenueID:  venue.VenueID,
			VenueSectionName:     "Balcony",
			VenueSectionCapacity: 80,
		}
		if err := db.Create(section).Error; err != nil {
			t.Fatalf("seed section: %v", err)
		}

		if err := db.Delete(&VenueModel.VenueModel{}, venue.VenueID).Error; err != nil {
			t.Fatalf("delete venue: %v", err)
		}
		var n int64
		db.Model(&VenueModel.VenueSectionModel{}).Where("venue_section_venue_id = ?", venue.VenueID).Count(&n)
		if n != 0 {
			t.Fatalf("%d sections survived the venue delete", n)
		}
	})

	t.Run("venue in use cannot be deleted", func(t *testing.T) {
		venue := seedVenue(t, db)
		seedEvent(t, db, u.ID, cat.EventCategoryID, &venue.VenueID)

		err := helper.TranslateDBError(db.Delete(&VenueModel.VenueModel{}, venue.VenueID).Error)
		if !errors.Is(err, helper.ErrReferentialViolation) {
			t.Fatalf("err = %v, want ErrReferentialViolation", err)
		}
	})

	t.Run("organizer with events cannot be deleted", func(t *testing.T) {
		organizer := seedUser(t, db, 2)
		seedEvent(t, db, organizer.ID, cat.EventCategoryID, nil)

		err := helper.TranslateDBError(db.Delete(&UserModel.UserModel{}, organizer.ID).Error)
		if !errors.Is(err, helper.ErrReferentialViolation) {
			t.Fatalf("err = %v, want ErrReferentialViolation", err)
		}
	})

	t.Run("event delete cascades children and detaches notifications", func(t *testing.T) {
		attendee := seedUser(t, db, 3)
		event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)

		schedule := &EventModel.EventScheduleModel{
			EventScheduleEventID:   event.EventID,
			EventScheduleTitle:     "Keynote",
			EventScheduleStartTime: event.EventStartDatetime,
			EventScheduleEndTime:   event.EventStartDatetime.Add(time.Hour),
		}
		rsvp := &RSVPModel.RSVPModel{RSVPEventID: event.EventID, RSVPUserID: attendee.ID, RSVPResponse: constants.RSVPConfirmed}
		feedback := &RSVPModel.EventFeedbackModel{
			EventFeedbackEventID: event.EventID,
			EventFeedbackUserID:  attendee.ID,
			EventFeedbackRating:  5,
		}
		notification := &NotificationModel.NotificationModel{
			NotificationUserID:  attendee.ID,
			NotificationEventID: &event.EventID,
			NotificationTitle:   "Reminder",
			NotificationBody:    "starts soon",
			NotificationType:    constants.NotificationReminder,
		}
		unsoldType := &TicketModel.TicketTypeModel{
			TicketTypeEventID:           event.EventID,
			TicketTypeName:              "GA",
			TicketTypeQuantityAvailable: 50,
			TicketTypeSalesStart:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			TicketTypeSalesEnd:          time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
			TicketTypeMaxPerUser:        4,
		}
		sponsor, tier := seedSponsorship(t, db, "Globex", "Silver")
		sponsorship := &SponsorshipModel.EventSponsorModel{
			EventSponsorEventID:   event.EventID,
			EventSponsorSponsorID: sponsor.SponsorID,
			EventSponsorTierID:    tier.SponsorshipTierID,
			EventSponsorAmount:    2500,
		}
		for _, row := range []any{schedule, rsvp, feedback, notification, unsoldType, sponsorship} {
			if err := db.Create(row).Error; err != nil {
				t.Fatalf("seed child row: %v", err)
			}
		}

		if err := db.Delete(&EventModel.EventModel{}, event.EventID).Error; err != nil {
			t.Fatalf("delete event: %v", err)
		}

		var n int64
		db.Model(&EventModel.EventScheduleModel{}).Where("event_schedule_event_id = ?", event.EventID).Count(&n)
		if n != 0 {
			t.Errorf("%d schedules survived", n)
		}
		db.Model(&RSVPModel.RSVPModel{}).Where("rsvp_event_id = ?", event.EventID).Count(&n)
		if n != 0 {
			t.Errorf("%d rsvps survived", n)
		}
		db.Model(&RSVPModel.EventFeedbackModel{}).Where("event_feedback_event_id = ?", event.EventID).Count(&n)
		if n != 0 {
			t.Errorf("%d feedback rows survived", n)
		}
		db.Model(&TicketModel.TicketTypeModel{}).Where("ticket_type_event_id = ?", event.EventID).Count(&n)
		if n != 0 {
			t.Errorf("%d ticket types survived", n)
		}
		db.Model(&SponsorshipModel.EventSponsorModel{}).Where("event_sponsor_event_id = ?", event.EventID).Count(&n)
		if n != 0 {
			t.Errorf("%d sponsorships survived", n)
		}
		// The sponsor and tier themselves are reference data and stay.
		var sponsorCount int64
		db.Model(&SponsorshipModel.SponsorModel{}).Where("sponsor_id = ?", sponsor.SponsorID).Count(&sponsorCount)
		if sponsorCount != 1 {
			t.Errorf("sponsor deleted along with the event")
		}

		var kept NotificationModel.NotificationModel
		if err := db.First(&kept, notification.NotificationID).Error; err != nil {
			t.Fatalf("notification deleted with event: %v", err)
		}
		if kept.NotificationEventID != nil {
			t.Errorf("notification event id = %v, want NULL", *kept.NotificationEventID)
		}
	})

	t.Run("ticket type with sold tickets cannot be deleted", func(t *testing.T) {
		buyer := seedUser(t, db, 4)
		event := seedEvent(t, db, u.ID, cat.EventCategoryID, nil)
		tt := &TicketModel.TicketTypeModel{
			TicketTypeEventID:           event.EventID,
			TicketTypeName:              "VIP",
			TicketTypeQuantityAvailable: 5,
			TicketTypeSalesStart:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			TicketTypeSalesEnd:          time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
			TicketTypeMaxPerUser:        2,
		}
		if err := db.Create(tt).Error; err != nil {
			t.Fatalf("seed ticket type: %v", err)
		}
		ticket := &TicketModel.TicketModel{
			TicketTicketTypeID: tt.TicketTypeID,
			TicketUserID:       buyer.ID,
			TicketCode:         uuid.New(),
			TicketStatus:       constants.TicketStatusActive,
		}
		if err := db.Create(ticket).Error; err != nil {
			t.Fatalf("seed ticket: %v", err)
		}

		err := helper.TranslateDBError(db.Delete(&TicketModel.TicketTypeModel{}, tt.TicketTypeID).Error)
		if !errors.Is(err, helper.ErrReferentialViolation) {
			t.Fatalf("delete ticket type: err = %v, want ErrReferentialViolation", err)
		}
		// And so the owning event cannot go either.
		err = helper.TranslateDBError(db.Delete(&EventModel.EventModel{}, event.EventID).Error)
		if !errors.Is(err, helper.ErrReferentialViolation) {
			t.Fatalf("delete event with sold tickets: err = %v, want ErrReferentialViolation", err)
		}
	})
}
