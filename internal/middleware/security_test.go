package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	suite.Run(t, new(SecurityHeadersSuite))
}

type SecurityHeadersSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *SecurityHeadersSuite) SetupTest() {
	s.e = echo.New()
}

func (s *SecurityHeadersSuite) TestHeadersSet() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))

	expected := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"X-XSS-Protection":          "1; mode=block",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
	}

	for header, want := range expected {
		s.Equal(want, rec.Header().Get(header), "header %s", header)
	}
}
