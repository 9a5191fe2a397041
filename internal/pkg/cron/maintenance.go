package cron

import (
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/auth"
)

// MaintenanceJobs holds housekeeping jobs that keep stored credentials tidy.
type MaintenanceJobs struct {
	authService auth.AuthService
}

func NewMaintenanceJobs(authService auth.AuthService) *MaintenanceJobs {
	return &MaintenanceJobs{authService: authService}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_reset_tokens", 1*time.Hour, j.authService.PurgeExpiredResetTokens)
}
