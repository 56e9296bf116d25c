package di

import (
	"lodge/config"
	bookingService "lodge/internal/domains/booking/service"
	commandService "lodge/internal/domains/command/service"
	dashboardService "lodge/internal/domains/dashboard/service"
	guestService "lodge/internal/domains/guest/service"
	roomService "lodge/internal/domains/room/service"
	userService "lodge/internal/domains/user/service"
	"lodge/internal/seed"
)

// Application bundles the assembled storage layer. Consumers receive it from
// InitializeApplication; there is no ambient global instance.
type Application struct {
	Config    *config.Config
	Seeder    *seed.Seeder
	Users     userService.User
	Rooms     roomService.Room
	Guests    guestService.Guest
	Bookings  bookingService.Booking
	Commands  commandService.Command
	Dashboard dashboardService.Dashboard
}
