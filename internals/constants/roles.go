package constants

// Seed role names. Roles are reference data; these are the ones the
// application recognizes out of the box.
const (
	RoleOrganizer = "organizer"
	RoleAttendee  = "attendee"
	RoleAdmin     = "admin"
)

var DefaultRoles = []string{RoleOrganizer, RoleAttendee, RoleAdmin}
