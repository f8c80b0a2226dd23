package scheduler

import (
	"context"
	"time"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type courseCompleter interface {
	CompleteFinished(ctx context.Context) ([]*domain.Course, error)
}

// Scheduler periodically marks courses whose end date has passed as
// completed, so the catalogue does not keep admitting into finished
// courses.
type Scheduler struct {
	courseService courseCompleter
	interval      time.Duration
	logger        logger.Logger
}

func New(
	courseService courseCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		courseService: courseService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.courseService.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished courses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range completed {
		s.logger.Info("course completed",
			logger.String("course_id", c.ID),
			logger.String("name", c.Name),
		)
	}
}
