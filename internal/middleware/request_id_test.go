package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestRequestIDMiddleware(t *testing.T) {
	suite.Run(t, new(RequestIDSuite))
}

type RequestIDSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *RequestIDSuite) SetupTest() {
	s.e = echo.New()
}

func (s *RequestIDSuite) invoke(req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))

	return rec, c
}

func (s *RequestIDSuite) TestGeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec, c := s.invoke(req)

	traceID := rec.Header().Get(TraceIDHeader)
	s.NotEmpty(traceID)
	_, err := uuid.Parse(traceID)
	s.NoError(err, "generated trace ID should be a UUID")

	s.Equal(traceID, GetTraceID(c))
}

func (s *RequestIDSuite) TestHonorsCallerSuppliedTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	req.Header.Set(TraceIDHeader, "client-trace-99")

	rec, c := s.invoke(req)

	s.Equal("client-trace-99", rec.Header().Get(TraceIDHeader))
	s.Equal("client-trace-99", GetTraceID(c))
}

func (s *RequestIDSuite) TestUniquePerRequest() {
	first, _ := s.invoke(httptest.NewRequest(http.MethodGet, "/", nil))
	second, _ := s.invoke(httptest.NewRequest(http.MethodGet, "/", nil))

	s.NotEqual(first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
}

func (s *RequestIDSuite) TestGetTraceID_MissingReturnsEmpty() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.e.NewContext(req, httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
