// Package jobs provides the scheduled background tasks of the shop, built on
// github.com/robfig/cron/v3.
//
// ClientOrderIntakeJob runs every second ("* * * * * *" with seconds enabled)
// and turns due client placements from intake.Queue into registered orders
// through PlaceClientOrderCommandHandler.
//
//	jobManager := jobs.NewJobManager(queue, placeHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Jobs log through the injected *slog.Logger with a "component" attribute.
package jobs
