package visitors

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

// Service сервис для работы с записями посетителей (операции персонала)
type Service struct {
	visitorRepo    VisitorRepository
	departmentRepo DepartmentRepository
	logRepo        LogRepository
	mailQueue      MailEnqueuer
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса посетителей
func NewService(
	visitorRepo VisitorRepository,
	departmentRepo DepartmentRepository,
	logRepo LogRepository,
	mailQueue MailEnqueuer,
	logger Logger,
) *Service {
	return &Service{
		visitorRepo:    visitorRepo,
		departmentRepo: departmentRepo,
		logRepo:        logRepo,
		mailQueue:      mailQueue,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetByID получает посетителя с журналом действий
func (s *Service) GetByID(ctx context.Context, id string) (*models.VisitorResponse, error) {
	s.logger.Info("GetByID: fetching visitor id=%s", id)

	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			s.logger.Warn("GetByID: visitor id=%s not found", id)
			return nil, ErrVisitorNotFound
		}
		s.logger.Error("GetByID: repository error for visitor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainVisitor(visitor)

	logs, err := s.logRepo.GetByVisitorID(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to load logs for visitor id=%s: %v", id, err)
	} else {
		resp.Logs = models.FromDomainLogs(logs)
	}

	return resp, nil
}

// List получает список посетителей с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.VisitorListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	visitors, err := s.visitorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d visitors", len(visitors))
	return models.FromDomainVisitorList(visitors), nil
}

// Search ищет посетителей по имени, email, компании или коду пропуска
func (s *Service) Search(ctx context.Context, q string, limit int) (*models.VisitorListResponse, error) {
	if q == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	visitors, err := s.visitorRepo.Search(ctx, q, limit)
	if err != nil {
		s.logger.Error("Search: repository error for q=%q: %v", q, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: q=%q matched %d visitors", q, len(visitors))
	return models.FromDomainVisitorList(visitors), nil
}

// Complete вручную закрывает визит (check-out посетителя персоналом)
func (s *Service) Complete(ctx context.Context, id string) (*models.VisitorResponse, error) {
	s.logger.Info("Complete: visitor id=%s", id)

	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			return nil, ErrVisitorNotFound
		}
		s.logger.Error("Complete: repository error for visitor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !visitor.CanBeCompleted() {
		s.logger.Warn("Complete: visitor id=%s is %s", id, visitor.Status)
		return nil, ErrNotCompletable
	}

	now := s.timeProvider.Now()
	if err := s.visitorRepo.Complete(ctx, id, now); err != nil {
		s.logger.Error("Complete: failed to complete visitor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if _, err := s.logRepo.Append(ctx, &domain.VisitorLog{
		VisitorID: id,
		Action:    domain.ActionCheckedOut,
		Notes:     "completed by staff",
	}); err != nil {
		s.logger.Warn("Complete: failed to append log for visitor id=%s: %v", id, err)
	}

	visitor.Status = domain.StatusCompleted
	visitor.CheckedOutAt = &now
	return models.FromDomainVisitor(visitor), nil
}

// Cancel отменяет активный визит (слот освобождается, пропуск гаснет)
func (s *Service) Cancel(ctx context.Context, id string) (*models.VisitorResponse, error) {
	s.logger.Info("Cancel: visitor id=%s", id)

	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			return nil, ErrVisitorNotFound
		}
		s.logger.Error("Cancel: repository error for visitor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !visitor.CanBeCancelled() {
		s.logger.Warn("Cancel: visitor id=%s is %s", id, visitor.Status)
		return nil, ErrNotCancellable
	}

	if err := s.visitorRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to cancel visitor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if _, err := s.logRepo.Append(ctx, &domain.VisitorLog{
		VisitorID: id,
		Action:    domain.ActionCancelled,
		Notes:     "cancelled by staff",
	}); err != nil {
		s.logger.Warn("Cancel: failed to append log for visitor id=%s: %v", id, err)
	}

	visitor.Status = domain.StatusCancelled
	return models.FromDomainVisitor(visitor), nil
}

// Delete удаляет запись посетителя; журнал действий сохраняется
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: visitor id=%s", id)

	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			return ErrVisitorNotFound
		}
		s.logger.Error("Delete: repository error for visitor id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.visitorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			return ErrVisitorNotFound
		}
		s.logger.Error("Delete: repository error for visitor id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if _, err := s.logRepo.Append(ctx, &domain.VisitorLog{
		VisitorID: id,
		Action:    domain.ActionDeleted,
		Notes:     fmt.Sprintf("record of %s removed by staff", visitor.Name),
	}); err != nil {
		s.logger.Warn("Delete: failed to append log for visitor id=%s: %v", id, err)
	}

	return nil
}

// ResendEmail повторно ставит письмо с пропуском в очередь отправки
func (s *Service) ResendEmail(ctx context.Context, id string) error {
	s.logger.Info("ResendEmail: visitor id=%s", id)

	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			return ErrVisitorNotFound
		}
		s.logger.Error("ResendEmail: repository error for visitor id=%s: %v", id, err)
		return fmt.Errorf("%w: ResendEmail - repository error: %v", ErrInternal, err)
	}

	if !visitor.IsActive() {
		s.logger.Warn("ResendEmail: visitor id=%s is %s", id, visitor.Status)
		return ErrNotActive
	}

	if err := s.mailQueue.Enqueue(ctx, mailqueue.Task{
		Kind:      mailqueue.KindResend,
		VisitorID: id,
	}); err != nil {
		s.logger.Error("ResendEmail: failed to enqueue mail for visitor id=%s: %v", id, err)
		return fmt.Errorf("%w: ResendEmail - enqueue error: %v", ErrInternal, err)
	}

	if _, err := s.logRepo.Append(ctx, &domain.VisitorLog{
		VisitorID: id,
		Action:    domain.ActionEmailResent,
		Notes:     "qr pass resent by staff",
	}); err != nil {
		s.logger.Warn("ResendEmail: failed to append log for visitor id=%s: %v", id, err)
	}

	return nil
}

// ListDepartments получает справочник отделов
func (s *Service) ListDepartments(ctx context.Context) ([]models.DepartmentResponse, error) {
	deps, err := s.departmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListDepartments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDepartments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDepartments(deps), nil
}
