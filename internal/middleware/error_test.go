package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"interview-prep/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		code      string
		retryable bool
	}{
		{name: "prerequisite", err: domain.NewPrerequisiteMissingError("categorize", "refined_subtopics"), status: http.StatusConflict, code: "PREREQUISITE_MISSING"},
		{name: "selection", err: domain.NewSelectionInvalidError("Soft Skills", "SQL"), status: http.StatusBadRequest, code: "SELECTION_INVALID"},
		{name: "not found", err: domain.NewNotFoundError("pipeline not found"), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "capability", err: domain.NewCapabilityFailureError("validate_subtopics", errors.New("refused")), status: http.StatusServiceUnavailable, code: "CAPABILITY_FAILURE", retryable: true},
		{name: "malformed", err: domain.NewMalformedResultError("refine_subtopics", errors.New("no JSON")), status: http.StatusServiceUnavailable, code: "MALFORMED_RESULT", retryable: true},
		{name: "internal", err: domain.NewInternalError("boom", nil), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
		{name: "plain error", err: errors.New("unexpected"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
		{name: "fiber error", err: fiber.ErrMethodNotAllowed, status: http.StatusMethodNotAllowed, code: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var er ErrorResponse
			require.NoError(t, json.Unmarshal(body, &er))
			assert.Equal(t, tt.code, er.Code)
			assert.Equal(t, tt.status, er.Status)
			assert.Equal(t, tt.retryable, er.Retryable)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	verr := domain.ValidationErrors{domain.NewMissingFieldError("job_role")}
	resp, err := newTestApp(verr).Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "job_role", body.Errors[0].Field)
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusForCode(domain.CodePrerequisiteMissing))
	assert.Equal(t, http.StatusBadRequest, StatusForCode(domain.CodeInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode(domain.ErrorCode("SOMETHING_ELSE")))
}
