// Package jobs runs the scheduled background work of the marketplace.
//
// # Available Jobs
//
// AutoCancelJob sweeps one work item kind and cancels items that stayed
// Pending past the auto-cancel window. JobManager runs one for orders and one
// for service requests on the same schedule.
//
//	manager, err := jobs.NewJobManager(ordersHandler, requestsHandler, "0 * * * * *", 100, log)
//	if err != nil {
//		return err
//	}
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. Runs of the
// same job never overlap: a run that is still going when the next tick fires
// causes that tick to be skipped.
package jobs
