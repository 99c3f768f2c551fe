package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_NextDelay(t *testing.T) {
	policy := RetryPolicy{
		MaxRetries:    5,
		InitialDelay:  2 * time.Second,
		MaxDelay:      time.Minute,
		BackoffFactor: 2,
	}

	assert.Equal(t, 2*time.Second, policy.NextDelay(1))
	assert.Equal(t, 4*time.Second, policy.NextDelay(2))
	assert.Equal(t, 8*time.Second, policy.NextDelay(3))
	assert.Equal(t, 16*time.Second, policy.NextDelay(4))
}

func TestRetryPolicy_NextDelay_CappedAtMax(t *testing.T) {
	policy := RetryPolicy{
		InitialDelay:  10 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 3,
	}

	assert.Equal(t, 30*time.Second, policy.NextDelay(2))
	assert.Equal(t, 30*time.Second, policy.NextDelay(10))
}

func TestRetryPolicy_NextDelay_FirstAttempt(t *testing.T) {
	policy := RetryPolicy{InitialDelay: time.Second, MaxDelay: time.Minute, BackoffFactor: 2}

	assert.Equal(t, time.Second, policy.NextDelay(0))
	assert.Equal(t, time.Second, policy.NextDelay(1))
}
