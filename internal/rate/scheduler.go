package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// SyncRunner is what the scheduler drives; *Syncer implements it.
type SyncRunner interface {
	Run(ctx context.Context) BatchReport
}

type Scheduler struct {
	syncer   SyncRunner
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		report := s.syncer.Run(jobCtx)
		logrus.Infof("Scheduled sync %s finished: %d created, %d updated, %d skipped, %d failed",
			report.ExecID,
			report.Count(StatusCreated),
			report.Count(StatusUpdated),
			report.Count(StatusSkipped),
			report.Count(StatusFailed),
		)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		// first run fires right away, matching the previous fixed-rate behavior
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(syncer SyncRunner, interval time.Duration) *Scheduler {
	return &Scheduler{syncer: syncer, interval: interval}
}
