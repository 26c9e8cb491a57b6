// Package scheduler runs the periodic publish job: content scheduled for a
// time that has passed is promoted to published. One best-effort batch per
// tick; failures are logged and retried implicitly on the next tick.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"marketing-cms/internal/repo"
)

type Scheduler struct {
	cron *cron.Cron
	pub  *repo.Publisher
	log  *zap.Logger
}

func New(pub *repo.Publisher, log *zap.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), pub: pub, log: log}
}

// Start registers the promotion job on the given cron expression
// (default "*/5 * * * *") and starts the timer.
func (s *Scheduler) Start(expr string) error {
	if _, err := s.cron.AddFunc(expr, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started", zap.String("cron", expr))
	return nil
}

// Stop halts the timer and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) tick() {
	now := time.Now()
	promoted, err := s.pub.PromoteDue(context.Background(), now)
	if err != nil {
		s.log.Error("publish tick failed", zap.Error(err))
		return
	}
	if len(promoted) > 0 {
		s.log.Info("published scheduled content",
			zap.Any("promoted", promoted),
			zap.Time("tick", now),
		)
	}
}
