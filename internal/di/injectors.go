//go:build wireinject
// +build wireinject

package di

import (
	"fitviz/internal"
	"fitviz/internal/controllers"
	"fitviz/internal/providers"
	"fitviz/internal/reminders"
	"fitviz/internal/services"
	"fitviz/internal/storage"
	"fitviz/internal/structures"
	wire "github.com/google/wire"
)

var storeSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewClockProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,

	storage.NewCompressor,
	storage.NewStoreProvider,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		storeSet,

		services.NewTrackerService,
		services.NewNotificationService,
		reminders.NewScheduler,
		controllers.NewTrackerController,
		controllers.NewNotificationController,
		controllers.NewReminderController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}

func InitTracker(cfg *structures.CliFlags) (services.TrackerServiceInterface, func(), error) {

	wire.Build(
		storeSet,
		services.NewTrackerService,
	)

	return nil, nil, nil
}
