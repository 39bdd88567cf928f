package ocean

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("provider payload", func(t *testing.T) {
		t.Parallel()

		apiErr := parseAPIError(429, []byte(`{"id":"too_many_requests","message":"Slow down"}`))
		assert.Equal(t, 429, apiErr.StatusCode)
		assert.Equal(t, "too_many_requests", apiErr.ID)
		assert.Equal(t, "Slow down", apiErr.Message)
		assert.Equal(t, "too_many_requests: Slow down (status: 429)", apiErr.Error())
	})

	t.Run("non-JSON payload falls back to the raw body", func(t *testing.T) {
		t.Parallel()

		apiErr := parseAPIError(500, []byte("Internal Server Error"))
		assert.Equal(t, "unknown", apiErr.ID)
		assert.Equal(t, "Internal Server Error", apiErr.Message)
	})

	t.Run("JSON payload without an id falls back too", func(t *testing.T) {
		t.Parallel()

		apiErr := parseAPIError(500, []byte(`{"error":"different shape"}`))
		assert.Equal(t, "unknown", apiErr.ID)
		assert.Equal(t, `{"error":"different shape"}`, apiErr.Message)
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &APIError{StatusCode: 404, ID: "not_found", Message: "nope"}
	rateLimited := &APIError{StatusCode: 429, ID: "too_many_requests", Message: "slow down"}
	unauthorized := &APIError{StatusCode: 401, ID: "unauthorized", Message: "bad token"}
	transportErr := &TransportError{Err: errors.New("connection refused")}
	decodeErr := &DecodeError{Key: "volume", Err: ErrMissingEnvelopeKey}

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{"not found matches", notFound, IsNotFound, true},
		{"not found rejects other statuses", rateLimited, IsNotFound, false},
		{"rate limited matches", rateLimited, IsRateLimited, true},
		{"unauthorized matches", unauthorized, IsUnauthorized, true},
		{"transport matches", transportErr, IsTransport, true},
		{"transport rejects api errors", notFound, IsTransport, false},
		{"decode matches", decodeErr, IsDecode, true},
		{"decode rejects transport", transportErr, IsDecode, false},
		{"nil never matches", nil, IsNotFound, false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.predicate(testCase.err))
		})
	}

	t.Run("predicates see through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("fetching volume: %w", notFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestErrorUnwrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	transportErr := &TransportError{Err: cause}
	require.ErrorIs(t, transportErr, cause)
	assert.Equal(t, "transport: connection reset", transportErr.Error())

	decodeErr := &DecodeError{Key: "volumes", Err: ErrMissingEnvelopeKey}
	require.ErrorIs(t, decodeErr, ErrMissingEnvelopeKey)
	assert.Equal(t, `decode "volumes": response envelope key not found`, decodeErr.Error())

	encodeErr := &DecodeError{Err: errors.New("unsupported type")}
	assert.Equal(t, "decode: unsupported type", encodeErr.Error())
}
