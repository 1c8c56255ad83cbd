// Package jobs provides scheduled background tasks for the parcel registry.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// AutoDispatchJob dispatches parcels whose remaining charge is within the
// dispatch threshold. It is the system-triggered counterpart of the operator
// dispatch endpoint and is disabled when no dispatch location is configured.
//
// # Usage
//
//	manager := jobs.NewJobManager()
//	manager.Add("auto dispatch", jobs.NewAutoDispatchJob(registry, schedule, "depot", 100, logger))
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// Parcels that are still owed or already dispatched are skipped silently.
// Anything else is logged at error level and retried on the next tick.
package jobs
