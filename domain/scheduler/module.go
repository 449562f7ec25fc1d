package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Narturebelle/Narturebelle/domain/landing"
	"github.com/Narturebelle/Narturebelle/internal/config"
)

// Module provides scheduled task functionality
var Module = fx.Module("scheduler",
	fx.Provide(
		newScheduler,
		landing.NewSweepTask,
	),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

func newScheduler(log *slog.Logger, cfg *config.Config) *Scheduler {
	return NewScheduler(log, cfg.Session.SweepInterval)
}

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Sweep     *landing.SweepTask
	Cfg       *config.Config
	Log       *slog.Logger
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	if err := p.Scheduler.AddIntervalTask("session_sweep", p.Cfg.Session.SweepInterval, p.Sweep.Run); err != nil {
		return err
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle
func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
