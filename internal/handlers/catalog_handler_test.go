package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	"github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	handler *CatalogHandler
	echo    *echo.Echo
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.handler = NewCatalogHandler()
}

func (s *CatalogHandlerTestSuite) decodeData(rec *httptest.ResponseRecorder, target any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, target))
}

func (s *CatalogHandlerTestSuite) TestListCards() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.ListCards(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CardListResponse
	s.decodeData(rec, &response)

	s.Equal(20, response.Total)
	s.Require().Len(response.Cards, 20)

	first := response.Cards[0]
	s.Equal("hdfc1", first.ID)
	s.Equal("HDFC Regalia", first.Name)
	s.Equal("4%", first.CashbackDisplay)
	s.Equal("₹2,500", first.AnnualFeeDisplay)
	s.Equal("₹5,000", first.JoiningBonusDisplay)
	s.Equal(models.DefaultRating, first.Rating)
	s.Equal(models.DefaultReviews, first.Reviews)
}

func (s *CatalogHandlerTestSuite) TestGetCard_Found() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/sbi2", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/cards/:id")
	c.SetParamNames("id")
	c.SetParamValues("sbi2")

	s.Require().NoError(s.handler.GetCard(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CardResponse
	s.decodeData(rec, &response)

	s.Equal("SBI SimplyCLICK", response.Name)
	s.Equal("10%", response.CashbackDisplay)
	s.Equal("₹499", response.AnnualFeeDisplay)
}

func (s *CatalogHandlerTestSuite) TestGetCard_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/hdfc99", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/cards/:id")
	c.SetParamNames("id")
	c.SetParamValues("hdfc99")

	s.Require().NoError(s.handler.GetCard(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.CatalogCardNotFound), response.Error.Code)
}

func (s *CatalogHandlerTestSuite) TestGetCard_EmptyID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/cards/:id")
	c.SetParamNames("id")
	c.SetParamValues("")

	s.Require().NoError(s.handler.GetCard(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.CatalogInvalidID), response.Error.Code)
}

func (s *CatalogHandlerTestSuite) TestListCategories() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryListResponse
	s.decodeData(rec, &response)

	s.Require().Len(response.Categories, 4)
	s.Equal("travel", response.Categories[0].Category)
	s.Equal("Travel", response.Categories[0].Label)
	s.Equal(int64(15000), response.Categories[0].MaxAmount)
	s.Equal([]int64{1000, 5000}, response.Categories[0].QuickIncrements)
}
