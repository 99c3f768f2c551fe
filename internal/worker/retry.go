package worker

import "time"

// RetryPolicy политика повторов с экспоненциальной задержкой
type RetryPolicy struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// NextDelay возвращает задержку перед попыткой attempt (считая с 1)
func (p RetryPolicy) NextDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return p.InitialDelay
	}

	delay := p.InitialDelay
	for i := 1; i < attempt; i++ {
		delay = time.Duration(float64(delay) * p.BackoffFactor)
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}

	return delay
}
