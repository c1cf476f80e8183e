// Package jobs provides scheduled background tasks for the order
// coordination service.
//
// Jobs are cron based, using github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start and stop interface.
//
// # Available Jobs
//
// 1. HubSweepJob - periodically removes tracking subscriptions whose
// clients have stopped draining their event channels, so rooms do not
// accumulate dead sessions.
package jobs
