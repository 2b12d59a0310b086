package jobs

import (
	"context"
	"time"

	"clinic-admin-api/internal/domain/repository"
	"clinic-admin-api/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Scheduler runs the daily maintenance jobs for the dashboard.
type Scheduler struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	eventService    *service.EventService
	cron            *cron.Cron
}

func NewScheduler(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	eventService *service.EventService,
) *Scheduler {
	return &Scheduler{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		eventService:    eventService,
		cron:            cron.New(),
	}
}

// Start registers the jobs and launches the cron loop.
func (s *Scheduler) Start() error {
	// Runs every day at 00:15 AM
	if _, err := s.cron.AddFunc("15 0 * * *", s.ExpireStaleAppointments); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Job scheduler started")
	return nil
}

// Stop shuts the cron loop down and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Job scheduler stopped")
}

// ExpireStaleAppointments marks pending and approved appointments whose
// schedule date has passed as no_show.
func (s *Scheduler) ExpireStaleAppointments() {
	today := time.Now().Format("2006-01-02")

	affected, err := s.appointmentRepo.ExpireBefore(s.db, today)
	if err != nil {
		s.log.Warnf("Failed to expire stale appointments: %+v", err)
		return
	}

	if affected > 0 {
		s.log.Infof("Expired %d stale appointments", affected)
		s.eventService.Publish(context.Background(), "appointment", service.EventActionStatusChanged, "bulk")
	}
}
