package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(CatalogCardNotFound, "trace-123")

	s.Equal("CATALOG_001", response.Error.Code)
	s.Equal("Card not found in the catalog", response.Error.Message)
	s.Equal("trace-123", response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(ValidationGeneral, "trace-456",
		WithMessage("Selection payload is invalid"),
		WithDetails("selected_categories: required", "category_spends[fuel]: gte"))

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Selection payload is invalid", response.Error.Message)
	s.Len(response.Error.Details, 2)
	s.Contains(response.Error.Details, "selected_categories: required")
}

func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"card_index": "must be -1 or greater",
	}

	response := NewValidationError(fieldErrors, "trace-789")

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal("trace-789", response.Error.TraceID)
	s.Len(response.Error.Details, 1)
	s.Equal("card_index: must be -1 or greater", response.Error.Details[0])
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("session map corrupted")

	response, err := WrapSystemError(internal, "trace-abc")

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "corrupted")
	s.Equal("trace-abc", response.Error.TraceID)
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(SessionNotFound, "trace-json")

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("SESSION_001", decoded.Error.Code)
	s.Equal("trace-json", decoded.Error.TraceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"validation errors are 400", ValidationGeneral, http.StatusBadRequest},
		{"unknown category is 400", ValidationUnknownCategory, http.StatusBadRequest},
		{"invalid card ID is 400", CatalogInvalidID, http.StatusBadRequest},
		{"negative spend is 400", SelectionNegativeSpend, http.StatusBadRequest},
		{"invalid session ID is 400", SessionInvalidID, http.StatusBadRequest},
		{"card not found is 404", CatalogCardNotFound, http.StatusNotFound},
		{"session not found is 404", SessionNotFound, http.StatusNotFound},
		{"disabled endpoint is 404", SystemEndpointDisabled, http.StatusNotFound},
		{"expired session is 410", SessionExpired, http.StatusGone},
		{"rate limit is 429", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable is 503", SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"internal error is 500", SystemInternalError, http.StatusInternalServerError},
		{"unknown code defaults to 500", ErrorCode("NOPE_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerErrorClassification() {
	clientErr := NewErrorResponse(ValidationGeneral, "t1")
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemInternalError, "t2")
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(SessionExpired, "trace-str")
	s.Equal("[SESSION_003] Session has expired (trace: trace-str)", response.String())
}
