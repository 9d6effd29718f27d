package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	handler *HealthCheckHandler
	echo    *echo.Echo
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.handler = NewHealthCheckHandler()
}

func (s *HealthHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Equal("healthy", response["status"])
	s.Equal(float64(20), response["catalog_size"])
	s.NotEmpty(response["time"])
	s.NotEmpty(response["uptime"])
}
