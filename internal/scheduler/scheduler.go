package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a periodic sweep. It returns how many records it handled.
type Job func(ctx context.Context) (int, error)

// Scheduler runs sweeps on cron schedules. A sweep still running when its
// next tick fires is skipped.
type Scheduler struct {
	cron    *cron.Cron
	log     zerolog.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler whose jobs each run under timeout.
func New(log zerolog.Logger, timeout time.Duration) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	cronLog := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog))),
		log:     log,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register schedules job under spec. An empty spec disables the job.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if spec == "" {
		s.log.Info().Str("job", name).Msg("job disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("schedule %s job: %w", name, err)
	}
	s.log.Info().Str("job", name).Str("schedule", spec).Msg("scheduled job")
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := job(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("job", name).Int("handled", n).Msg("job failed")
		return
	}
	if n > 0 {
		s.log.Info().Str("job", name).Int("handled", n).Dur("elapsed", time.Since(start)).Msg("job finished")
	}
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and stops the schedule. The returned context
// is done once running jobs have returned.
func (s *Scheduler) Stop() context.Context {
	s.cancel()
	return s.cron.Stop()
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
