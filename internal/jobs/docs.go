// Package jobs provides scheduled background tasks for the garment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// are started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(dashboardHandler, "0 */15 * * * *", 24*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleLoadingJob reads the loading dashboard and logs a warning for every
// transaction pending approval or handover longer than the configured age.
// Nothing is rejected automatically; a supervisor decides.
package jobs
