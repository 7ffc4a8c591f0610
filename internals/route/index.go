package route

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "eventku_backend/internals/features/events/route"
	notificationRoute "eventku_backend/internals/features/notifications/route"
	rsvpRoute "eventku_backend/internals/features/rsvps/route"
	sponsorshipRoute "eventku_backend/internals/features/sponsorships/route"
	ticketingRoute "eventku_backend/internals/features/ticketing/route"
	userRoute "eventku_backend/internals/features/users/route"
	venueRoute "eventku_backend/internals/features/venues/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	v := validator.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	api := app.Group("/api")

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db, v)

	log.Println("[INFO] Setting up VenueRoutes...")
	venueRoute.VenueRoutes(api, db, v)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(api, db, v)

	log.Println("[INFO] Setting up TicketingRoutes...")
	ticketingRoute.TicketingRoutes(api, db, v)

	log.Println("[INFO] Setting up RSVPRoutes...")
	rsvpRoute.RSVPRoutes(api, db, v)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notificationRoute.NotificationRoutes(api, db, v)

	log.Println("[INFO] Setting up SponsorshipRoutes...")
	sponsorshipRoute.SponsorshipRoutes(api, db, v)
}
