//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/seed"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	commandRepository "lodge/internal/domains/command/repository"
	commandService "lodge/internal/domains/command/service"
	dashboardService "lodge/internal/domains/dashboard/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var commandDomain = wire.NewSet(
	commandRepository.New,
	commandService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	commandDomain,
	dashboardDomain,
)

func InitializeApplication() *Application {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		seed.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}
