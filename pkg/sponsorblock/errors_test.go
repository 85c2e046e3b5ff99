package sponsorblock

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		target any
	}{
		{http.StatusBadRequest, new(*BadRequestError)},
		{http.StatusForbidden, new(*ForbiddenError)},
		{http.StatusNotFound, new(*NotFoundError)},
		{http.StatusConflict, new(*DuplicateError)},
		{http.StatusTooManyRequests, new(*RateLimitError)},
		{http.StatusInternalServerError, new(*ServerError)},
		{http.StatusBadGateway, new(*ServerError)},
		{http.StatusTeapot, new(*ServerError)},
	}
	for _, tt := range tests {
		err := statusError(tt.status, []byte("detail"))
		assert.ErrorAs(t, err, tt.target, "status %d", tt.status)

		var httpErr *HTTPError
		assert.ErrorAs(t, err, &httpErr, "status %d", tt.status)
		assert.Equal(t, tt.status, httpErr.StatusCode)
		assert.Equal(t, "detail", httpErr.Body)
	}
}

func TestErrorMessages(t *testing.T) {
	err := statusError(http.StatusBadRequest, []byte("startTime must be before endTime"))
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "startTime must be before endTime")

	invalid := &InvalidVideoIDError{Input: "nope"}
	assert.Contains(t, invalid.Error(), "nope")
}

func TestTrimBody(t *testing.T) {
	long := strings.Repeat("x", 500)
	trimmed := trimBody([]byte(long))
	assert.Len(t, trimmed, maxBodySnippet+3)
	assert.True(t, strings.HasSuffix(trimmed, "..."))

	assert.Equal(t, "short", trimBody([]byte("short")))
}
