package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	testCases := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "code and component",
			err:      NewConfigError(ErrCodeInvalidConfig, "bad port").WithComponent("config"),
			expected: "[ERR_INVALID_CONFIG] component:config bad port",
		},
		{
			name:     "with cause",
			err:      NewNetworkError(ErrCodeRemoteUnreachable, "fetch failed", fmt.Errorf("dial tcp")),
			expected: "[ERR_REMOTE_UNREACHABLE] fetch failed: dial tcp",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestErrorIsAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewNetworkError(ErrCodeRemoteUnreachable, "fetch failed", cause)
	wrapped := fmt.Errorf("onebox: %w", err)

	assert.True(t, errors.Is(wrapped, &Error{Type: ErrorTypeNetwork, Code: ErrCodeRemoteUnreachable}))
	assert.False(t, errors.Is(wrapped, &Error{Type: ErrorTypeNetwork, Code: ErrCodeRateLimited}))
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, IsType(wrapped, ErrorTypeNetwork))
	assert.False(t, IsType(wrapped, ErrorTypeConfig))
	assert.True(t, IsRecoverable(wrapped))
	assert.False(t, IsRecoverable(NewConfigError(ErrCodeInvalidConfig, "x")))
	assert.False(t, IsRecoverable(cause))
}

func TestErrorWithContext(t *testing.T) {
	err := NewRenderError(ErrCodeRenderFailed, "render failed", nil).
		WithContext("feature", "details").
		WithContext("line", 3)

	assert.Equal(t, "details", err.Context["feature"])
	assert.Equal(t, 3, err.Context["line"])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasErrors())
	assert.NoError(t, c.Err(ErrCodeInvalidConfig, "invalid"))

	c.Add(nil)
	assert.False(t, c.HasErrors())

	first := fmt.Errorf("first")
	second := fmt.Errorf("second")
	c.Add(first)
	c.Add(second)

	require.True(t, c.HasErrors())
	assert.Len(t, c.Errors(), 2)

	err := c.Err(ErrCodeInvalidConfig, "invalid configuration")
	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.True(t, IsType(err, ErrorTypeValidation))
}
