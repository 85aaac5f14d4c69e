// Package scheduler runs periodic maintenance jobs, currently just
// pruning expired search-cache rows.
package scheduler

import (
	"context"

	"contact-scout/internal/logger"
	"contact-scout/internal/repository"

	"github.com/robfig/cron/v3"
)

// Hourly is often enough; expired rows are ignored by reads either way.
const pruneCronSpec = "@hourly"

type Scheduler struct {
	cron      *cron.Cron
	cacheRepo *repository.SearchCacheRepository
}

func NewScheduler(cacheRepo *repository.SearchCacheRepository) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		cacheRepo: cacheRepo,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(pruneCronSpec, func() {
		if err := s.RunPruneNow(); err != nil {
			logger.Error().Err(err).Msg("scheduled cache prune failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("spec", pruneCronSpec).Msg("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info().Msg("scheduler stopped")
}

// RunPruneNow triggers the prune job immediately, useful for manual
// maintenance.
func (s *Scheduler) RunPruneNow() error {
	removed, err := s.cacheRepo.PruneExpired(context.Background())
	if err != nil {
		return err
	}
	logger.Info().Int64("removed", removed).Msg("pruned expired search cache rows")
	return nil
}
