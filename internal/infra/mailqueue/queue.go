package mailqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrEncodeTask возвращается при ошибке сериализации задачи
	ErrEncodeTask = errors.New("mailqueue: failed to encode task")

	// ErrPushTask возвращается, когда задачу не удалось положить ни в redis, ни в память
	ErrPushTask = errors.New("mailqueue: failed to push task")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector счетчики почтового конвейера
type MetricsCollector interface {
	IncMailEnqueued()
}

// Queue очередь email-задач поверх redis списка
// При недоступности redis откатывается на внутренний канал:
// задачи переживают рестарт только в redis-режиме
type Queue struct {
	redis         *redis.Client
	queueKey      string
	deadLetterKey string
	local         chan Task
	metrics       MetricsCollector
	logger        Logger
}

// NewQueue создает очередь. redisClient может быть nil - тогда работает только память
func NewQueue(redisClient *redis.Client, queueKey string, metrics MetricsCollector, logger Logger) *Queue {
	if queueKey == "" {
		queueKey = "vms:mail:queue"
	}

	return &Queue{
		redis:         redisClient,
		queueKey:      queueKey,
		deadLetterKey: queueKey + ":deadletter",
		local:         make(chan Task, 256),
		metrics:       metrics,
		logger:        logger,
	}
}

// Enqueue кладет задачу в очередь. Сначала redis, при ошибке - внутренний канал
func (q *Queue) Enqueue(ctx context.Context, task Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	if q.redis != nil {
		if err := q.pushRedis(ctx, task); err != nil {
			q.logger.Warn("mailqueue: redis push failed, fallback to memory queue: %v", err)
		} else {
			q.metrics.IncMailEnqueued()
			return nil
		}
	}

	select {
	case q.local <- task:
		q.metrics.IncMailEnqueued()
		return nil
	default:
		return fmt.Errorf("%w: in-memory queue full", ErrPushTask)
	}
}

// Dequeue забирает задачу из очереди, блокируясь не дольше timeout
// Возвращает ok=false, если за timeout задач не появилось
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (Task, bool) {
	// Сначала внутренний канал - туда попадают задачи при сбоях redis
	select {
	case t := <-q.local:
		return t, true
	default:
	}

	if q.redis == nil {
		select {
		case t := <-q.local:
			return t, true
		case <-time.After(timeout):
			return Task{}, false
		case <-ctx.Done():
			return Task{}, false
		}
	}

	res, err := q.redis.BRPop(ctx, timeout, q.queueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			q.logger.Error("mailqueue: redis BRPOP error: %v", err)
		}
		return Task{}, false
	}
	if len(res) != 2 {
		return Task{}, false
	}

	var task Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		q.logger.Error("mailqueue: decode task: %v", err)
		return Task{}, false
	}

	return task, true
}

// PushDeadLetter откладывает безнадежную задачу в dead letter список
// для ручного разбора. Без redis задача просто логируется и теряется
func (q *Queue) PushDeadLetter(ctx context.Context, task Task) {
	if q.redis == nil {
		q.logger.Error("mailqueue: dropping dead task (no redis): kind=%s visitor=%s last_error=%s",
			task.Kind, task.VisitorID, task.LastError)
		return
	}

	data, err := json.Marshal(task)
	if err != nil {
		q.logger.Error("mailqueue: encode dead letter: %v", err)
		return
	}

	if err := q.redis.LPush(ctx, q.deadLetterKey, data).Err(); err != nil {
		q.logger.Error("mailqueue: dead letter push: %v", err)
	}
}

func (q *Queue) pushRedis(ctx context.Context, task Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeTask, err)
	}
	return q.redis.LPush(ctx, q.queueKey, data).Err()
}
