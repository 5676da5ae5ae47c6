package appointments

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper marks confirmed appointments as completed once they are over.
// Only the instance holding the leader lock does the update.
type Sweeper struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	appointments contracts.AppointmentRepository
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
	now          func() time.Time
}

func NewSweeper(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, appointmentRepository contracts.AppointmentRepository) *Sweeper {
	return &Sweeper{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		appointments: appointmentRepository,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules the sweep. An empty cron spec leaves the sweeper off.
func (s *Sweeper) Start(ctx context.Context) error {
	spec := s.cfg.Appointment.SweeperCronSpec
	if spec == "" {
		s.log.Info("appointment.sweeper: disabled, no cron spec configured")
		return nil
	}

	s.runCtx, s.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(spec, func() { s.runOnce(s.runCtx) })
	if err != nil {
		s.cancel()
		return err
	}
	c.Start()
	s.cron = c

	s.log.Info("appointment.sweeper: started", zap.String(constvars.LoggingCronSpecKey, spec))
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	ttl := time.Duration(s.cfg.Appointment.SweeperLeaderLockInSeconds) * time.Second
	acquired, token, err := s.locker.TryLock(ctx, constvars.RedisKeySweeperLeaderLock, ttl)
	if err != nil {
		s.log.Warn("appointment.sweeper: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		s.log.Debug("appointment.sweeper: leader lock held by another instance")
		return
	}
	defer s.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeySweeperLeaderLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go s.keepLeaderLock(refreshCtx, token, ttl)

	grace := time.Duration(s.cfg.Appointment.CompletionGraceInMinutes) * time.Minute
	cutoff := s.now().Add(-grace)
	completed, err := s.appointments.MarkCompletedEndedBefore(ctx, cutoff)
	if err != nil {
		s.log.Warn("appointment.sweeper: marking appointments completed failed", zap.Error(err))
		return
	}

	s.log.Info("appointment.sweeper: run finished", zap.Int64(constvars.LoggingCountKey, completed))
}

func (s *Sweeper) keepLeaderLock(ctx context.Context, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := s.locker.Refresh(ctx, constvars.RedisKeySweeperLeaderLock, token, ttl); err != nil {
				s.log.Warn("appointment.sweeper: refreshing leader lock failed", zap.Error(err))
			}
		}
	}
}
