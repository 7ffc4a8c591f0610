package constants

// Closed value sets for the enumerated columns. The same lists back the
// CHECK constraints in the schema and the `oneof` rules on the DTOs.

// Event lifecycle status
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

var EventStatuses = []string{
	EventStatusDraft,
	EventStatusPublished,
	EventStatusCancelled,
	EventStatusCompleted,
}

// Ticket status
const (
	TicketStatusActive    = "active"
	TicketStatusCancelled = "cancelled"
	TicketStatusRedeemed  = "redeemed"
)

// RSVP response
const (
	RSVPConfirmed  = "confirmed"
	RSVPWaitlisted = "waitlisted"
	RSVPCancelled  = "cancelled"
)

// Notification type
const (
	NotificationReminder    = "reminder"
	NotificationUpdate      = "update"
	NotificationPromotional = "promotional"
	NotificationSystem      = "system"
)

func IsValidEventStatus(s string) bool {
	for _, v := range EventStatuses {
		if v == s {
			return true
		}
	}
	return false
}
