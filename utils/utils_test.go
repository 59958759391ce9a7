package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccessToken(t *testing.T) {
	t.Parallel()

	t.Run("Should return a 32 character hex string", func(t *testing.T) {
		t.Parallel()

		token, err := CreateAccessToken()
		assert.NoError(t, err)
		assert.Len(t, token, 32)
	})

	t.Run("Should not repeat across calls", func(t *testing.T) {
		t.Parallel()

		first, err := CreateAccessToken()
		assert.NoError(t, err)
		second, err := CreateAccessToken()
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestRetryPolicy(t *testing.T) {
	t.Parallel()

	t.Run("Should stop on the attempt that succeeds", func(t *testing.T) {
		t.Parallel()

		policy := RetryPolicy{MaxAttempts: 5, Interval: time.Millisecond}
		attempts := 0
		err := policy.Run(func() (bool, error) {
			attempts++
			return attempts == 3, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Should return the last error once the budget is exhausted", func(t *testing.T) {
		t.Parallel()

		policy := RetryPolicy{MaxAttempts: 4, Interval: time.Millisecond}
		notReady := errors.New("not ready")
		attempts := 0
		err := policy.Run(func() (bool, error) {
			attempts++
			return false, notReady
		})
		assert.Equal(t, notReady, err)
		assert.Equal(t, 4, attempts)
	})

	t.Run("Should report exhaustion when no error was ever returned", func(t *testing.T) {
		t.Parallel()

		policy := RetryPolicy{MaxAttempts: 2, Interval: time.Millisecond}
		err := policy.Run(func() (bool, error) {
			return false, nil
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "retry budget")
	})
}
