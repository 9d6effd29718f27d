package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	"github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

type RecommendationHandlerTestSuite struct {
	suite.Suite
	handler *RecommendationHandler
	echo    *echo.Echo
}

func TestRecommendationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecommendationHandlerTestSuite))
}

func (s *RecommendationHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.handler = NewRecommendationHandler(
		services.NewRecommendationService(nil),
		services.NewSavingsService(nil),
	)
}

func (s *RecommendationHandlerTestSuite) post(body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	return rec, s.handler.Recommend(c)
}

func (s *RecommendationHandlerTestSuite) decodeData(rec *httptest.ResponseRecorder) dto.RecommendationResponse {
	var envelope struct {
		Data dto.RecommendationResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func (s *RecommendationHandlerTestSuite) TestRecommend_RankedResult() {
	rec, err := s.post(`{
		"selected_categories": ["travel", "shopping"],
		"category_spends": {"travel": 6000, "shopping": 8000}
	}`)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	response := s.decodeData(rec)

	s.NotEmpty(response.Cards)
	s.Equal(len(response.Cards), response.Total)
	s.Equal(int64(14000), response.TotalSpend)
	s.Equal("₹14,000", response.TotalSpendDisplay)

	for i, card := range response.Cards {
		s.Equal(i+1, card.Rank)
		s.Greater(card.MatchCount, 0)
	}

	// Best match first: two-category cards outrank single-category ones.
	s.Equal(2, response.Cards[0].MatchCount)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_EmptySelection() {
	rec, err := s.post(`{"selected_categories": []}`)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	response := s.decodeData(rec)
	s.Empty(response.Cards)
	s.Equal(0, response.Total)
	s.True(response.AverageCashback.IsZero())
	s.Equal(int64(0), response.MonthlySavings)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_SavingsTeaser() {
	rec, err := s.post(`{
		"selected_categories": ["fuel"],
		"category_spends": {"fuel": 10000}
	}`)
	s.Require().NoError(err)

	response := s.decodeData(rec)
	s.Require().NotEmpty(response.Cards)

	s.False(response.AverageCashback.IsZero())
	s.Greater(response.MonthlySavings, int64(0))
	s.NotEmpty(response.MonthlySavingsDisplay)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_TruncationBySpend() {
	// All categories selected with no spends entered floors the result at
	// three.
	rec, err := s.post(`{"selected_categories": ["travel", "shopping", "food", "fuel"]}`)
	s.Require().NoError(err)

	response := s.decodeData(rec)
	s.Equal(3, response.Total)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_UnknownCategoryRejected() {
	_, err := s.post(`{"selected_categories": ["groceries"]}`)

	s.Require().Error(err)
	var validationErrs validator.ValidationErrors
	s.ErrorAs(err, &validationErrs)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_NegativeSpendRejected() {
	_, err := s.post(`{
		"selected_categories": ["travel"],
		"category_spends": {"travel": -500}
	}`)

	s.Require().Error(err)
	var validationErrs validator.ValidationErrors
	s.ErrorAs(err, &validationErrs)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_AbsentSelectionIsEmptyResult() {
	rec, err := s.post(`{"category_spends": {"travel": 1000}}`)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	response := s.decodeData(rec)
	s.Empty(response.Cards)
}

func (s *RecommendationHandlerTestSuite) TestRecommend_MalformedBody() {
	rec, err := s.post(`{"selected_categories": "not-an-array"}`)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
}
