// Package scheduler runs housekeeping tasks on fixed intervals.
package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Narturebelle/Narturebelle/pkg/logger"
)

// TaskFunc is the function signature for scheduled tasks
type TaskFunc func(ctx context.Context) error

// Scheduler runs named tasks on robfig/cron.
type Scheduler struct {
	cron        *cron.Cron
	log         *slog.Logger
	taskTimeout time.Duration

	mu      sync.RWMutex
	tasks   map[string]cron.EntryID
	running bool
}

// NewScheduler creates a stopped scheduler. Each run of a task gets a
// context bounded by taskTimeout.
func NewScheduler(log *slog.Logger, taskTimeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		log:         log.With(logger.Scope("scheduler")),
		taskTimeout: taskTimeout,
		tasks:       make(map[string]cron.EntryID),
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
	return nil
}

// Stop waits for running tasks to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.log.Info("scheduler stopped gracefully")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timeout")
	}

	s.running = false
	return nil
}

// AddIntervalTask adds a task that runs every interval, replacing any task
// registered under the same name.
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, task TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.tasks[name]; ok {
		s.cron.Remove(entryID)
		delete(s.tasks, name)
	}

	entryID, err := s.cron.AddFunc("@every "+interval.String(), func() {
		s.RunTask(name, task)
	})
	if err != nil {
		return err
	}

	s.tasks[name] = entryID
	s.log.Info("added interval task",
		slog.String("name", name),
		slog.Duration("interval", interval))
	return nil
}

// RunTask executes one run of task and logs its outcome.
func (s *Scheduler) RunTask(name string, task TaskFunc) {
	startTime := time.Now()
	s.log.Debug("running scheduled task", slog.String("name", name))

	ctx, cancel := context.WithTimeout(context.Background(), s.taskTimeout)
	defer cancel()

	if err := task(ctx); err != nil {
		s.log.Error("scheduled task failed",
			slog.String("name", name),
			logger.Error(err),
			slog.Duration("duration", time.Since(startTime)))
		return
	}

	s.log.Debug("scheduled task completed",
		slog.String("name", name),
		slog.Duration("duration", time.Since(startTime)))
}

// ListTasks returns the names of all scheduled tasks, sorted.
func (s *Scheduler) ListTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
