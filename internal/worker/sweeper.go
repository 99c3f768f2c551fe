package worker

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// SweepStorage операции пакетного закрытия просроченных визитов
type SweepStorage interface {
	ExpirePending(ctx context.Context, before time.Time) ([]string, error)
	CompleteVerified(ctx context.Context, before time.Time, checkedOutAt time.Time) ([]string, error)
}

// SweepLogStorage журнал действий
type SweepLogStorage interface {
	Append(ctx context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Sweeper периодически закрывает просроченные визиты:
// pending с прошедшей датой становятся expired,
// verified без выписки - completed
type Sweeper struct {
	storage      SweepStorage
	logStorage   SweepLogStorage
	timeProvider TimeProvider
	interval     time.Duration
	logger       Logger
}

// NewSweeper создает воркер очистки. interval по умолчанию - час
func NewSweeper(storage SweepStorage, logStorage SweepLogStorage, timeProvider TimeProvider, interval time.Duration, logger Logger) *Sweeper {
	if interval == 0 {
		interval = time.Hour
	}

	return &Sweeper{
		storage:      storage,
		logStorage:   logStorage,
		timeProvider: timeProvider,
		interval:     interval,
		logger:       logger,
	}
}

// Start запускает периодическую очистку; останавливается по ctx
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("sweeper: started, interval %s", s.interval)
	defer s.logger.Info("sweeper: stopped")

	// Первый проход сразу при старте, чтобы подобрать хвосты после простоя
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep выполняет один проход очистки
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.timeProvider.Now()
	// Пропуск действует до конца дня визита, поэтому закрываем только даты строго раньше сегодня
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	expired, err := s.storage.ExpirePending(ctx, today)
	if err != nil {
		s.logger.Error("sweeper: expire pending: %v", err)
	} else if len(expired) > 0 {
		s.logger.Info("sweeper: expired %d pending visits", len(expired))
		s.appendLogs(ctx, expired, "visit date passed without check-in")
	}

	completed, err := s.storage.CompleteVerified(ctx, today, now)
	if err != nil {
		s.logger.Error("sweeper: complete verified: %v", err)
	} else if len(completed) > 0 {
		s.logger.Info("sweeper: auto-completed %d verified visits", len(completed))
		s.appendLogsAction(ctx, completed, domain.ActionCheckedOut, "auto-completed by daily sweep")
	}
}

func (s *Sweeper) appendLogs(ctx context.Context, ids []string, notes string) {
	s.appendLogsAction(ctx, ids, domain.ActionExpired, notes)
}

func (s *Sweeper) appendLogsAction(ctx context.Context, ids []string, action domain.LogAction, notes string) {
	for _, id := range ids {
		if _, err := s.logStorage.Append(ctx, &domain.VisitorLog{
			VisitorID: id,
			Action:    action,
			Notes:     notes,
		}); err != nil {
			s.logger.Warn("sweeper: append log for %s: %v", id, err)
		}
	}
}
