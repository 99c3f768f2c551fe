package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailer"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	"github.com/vmshq/VMS-VisitorService/pkg/qrgen"
)

// VisitorProvider доступ к записям посетителей
type VisitorProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
}

// Sender отправка писем
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// MailQueue очередь email-задач
type MailQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (mailqueue.Task, bool)
	Enqueue(ctx context.Context, task mailqueue.Task) error
	PushDeadLetter(ctx context.Context, task mailqueue.Task)
}

// MetricsCollector счетчики почтового конвейера
type MetricsCollector interface {
	IncMailFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MailWorker потребляет email-задачи из очереди и отправляет письма с QR пропуском
// Отправка fire-and-forget: ошибки не влияют на успех регистрации,
// задача уходит в повтор, после исчерпания попыток - в dead letter
type MailWorker struct {
	visitors VisitorProvider
	sender   Sender
	queue    MailQueue
	retry    RetryPolicy
	metrics  MetricsCollector
	logger   Logger
}

// NewMailWorker создает воркер отправки писем
func NewMailWorker(visitors VisitorProvider, sender Sender, queue MailQueue, retry RetryPolicy, metrics MetricsCollector, logger Logger) *MailWorker {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = 2 * time.Second
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 1 * time.Minute
	}
	if retry.BackoffFactor == 0 {
		retry.BackoffFactor = 2
	}

	return &MailWorker{
		visitors: visitors,
		sender:   sender,
		queue:    queue,
		retry:    retry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Start запускает основной цикл; останавливается по ctx
func (w *MailWorker) Start(ctx context.Context) {
	w.logger.Info("mailworker: started")
	defer w.logger.Info("mailworker: stopped")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		task, ok := w.queue.Dequeue(ctx, 2*time.Second)
		if !ok {
			continue
		}

		w.processTask(ctx, task)
	}
}

func (w *MailWorker) processTask(ctx context.Context, task mailqueue.Task) {
	if err := w.sendVisitorMail(ctx, task); err != nil {
		w.retryOrDrop(ctx, task, err)
		return
	}

	w.logger.Info("mailworker: sent %s mail for visitor %s (attempt %d)", task.Kind, task.VisitorID, task.Attempt+1)
}

// sendVisitorMail собирает письмо из актуального состояния записи и отправляет его
func (w *MailWorker) sendVisitorMail(ctx context.Context, task mailqueue.Task) error {
	visitor, err := w.visitors.GetByID(ctx, task.VisitorID)
	if err != nil {
		return fmt.Errorf("load visitor: %w", err)
	}

	// Визит уже неактуален - письмо не нужно
	if !visitor.IsActive() {
		w.logger.Warn("mailworker: visitor %s is %s, skipping %s mail", visitor.ID, visitor.Status, task.Kind)
		return nil
	}

	payload := qrgen.Payload{
		VisitorID: visitor.ID,
		Name:      visitor.Name,
		Code:      visitor.QRCode,
		VisitDate: visitor.VisitDate.Format(domain.DateFormat),
		VisitTime: visitor.VisitTime.String(),
	}

	png, err := qrgen.EncodePNG(payload)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	msg := mailer.Message{
		To:         visitor.Email,
		Subject:    mailSubject(task.Kind),
		Body:       mailBody(task.Kind, visitor),
		Attachment: png,
		AttachName: fmt.Sprintf("pass-%s.png", visitor.QRCode),
	}

	return w.sender.Send(ctx, msg)
}

func (w *MailWorker) retryOrDrop(ctx context.Context, task mailqueue.Task, cause error) {
	attempt := task.Attempt + 1
	task.Attempt = attempt
	task.LastError = cause.Error()

	if attempt >= w.retry.MaxRetries {
		w.metrics.IncMailFailed()
		w.logger.Error("mailworker: giving up on %s mail for visitor %s after %d attempts: %v",
			task.Kind, task.VisitorID, attempt, cause)
		w.queue.PushDeadLetter(ctx, task)
		return
	}

	delay := w.retry.NextDelay(attempt)
	w.logger.Warn("mailworker: %s mail for visitor %s failed (attempt %d), retry in %s: %v",
		task.Kind, task.VisitorID, attempt, delay, cause)

	// Задержка перед возвратом в очередь, чтобы не крутить горячий цикл повторов
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return
	}

	if err := w.queue.Enqueue(ctx, task); err != nil {
		w.metrics.IncMailFailed()
		w.logger.Error("mailworker: re-enqueue failed for visitor %s: %v", task.VisitorID, err)
		w.queue.PushDeadLetter(ctx, task)
	}
}

func mailSubject(kind string) string {
	switch kind {
	case mailqueue.KindReschedule:
		return "Ваш визит перенесён - новый QR пропуск"
	case mailqueue.KindResend:
		return "Повторная отправка QR пропуска"
	default:
		return "Подтверждение регистрации визита"
	}
}

func mailBody(kind string, v *domain.Visitor) string {
	var intro string
	switch kind {
	case mailqueue.KindReschedule:
		intro = "Ваш визит был перенесён. Прежний пропуск недействителен, используйте QR-код из этого письма."
	case mailqueue.KindResend:
		intro = "По вашему запросу повторно высылаем QR пропуск."
	default:
		intro = "Ваша регистрация подтверждена. QR-код пропуска во вложении."
	}

	return fmt.Sprintf(
		"Здравствуйте, %s!\n\n%s\n\nДата визита: %s\nВремя визита: %s\nКод пропуска: %s\n\nПредъявите QR-код на проходной. Пропуск действителен до конца дня визита.\n",
		v.Name,
		intro,
		v.VisitDate.Format(domain.DateFormat),
		v.VisitTime.String(),
		v.QRCode,
	)
}
