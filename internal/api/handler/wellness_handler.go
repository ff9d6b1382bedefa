package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-experience-api/internal/api/metrics"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

// WellnessHandler handles HTTP requests for wellness content and nudges.
// Content is not personalized, but all routes still require authentication.
type WellnessHandler struct {
	service ports.WellnessService
}

func NewWellnessHandler(service ports.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: service}
}

// Links handles GET /wellness/links.
//
// @Summary      External wellness links
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WellnessLink
// @Router       /wellness/links [get]
func (h *WellnessHandler) Links(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Links())
}

// Resources handles GET /wellness/resources.
//
// @Summary      Wellness resources
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WellnessResource
// @Router       /wellness/resources [get]
func (h *WellnessHandler) Resources(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Resources())
}

// MentalHealthTips handles GET /wellness/mental-health-tips.
//
// @Summary      Mental health tips
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.MentalHealthTip
// @Router       /wellness/mental-health-tips [get]
func (h *WellnessHandler) MentalHealthTips(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.MentalHealthTips())
}

// WorkLife handles GET /wellness/work-life.
//
// @Summary      Work-life balance articles
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WorkLifeArticle
// @Router       /wellness/work-life [get]
func (h *WellnessHandler) WorkLife(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.WorkLifeArticles())
}

// ListSurveys handles GET /wellness/surveys.
//
// @Summary      List engagement surveys
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  surveyListItemResponse
// @Router       /wellness/surveys [get]
func (h *WellnessHandler) ListSurveys(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	summaries := h.service.ListSurveys()
	out := make([]surveyListItemResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, surveyListItemResponse{ID: s.ID, Title: s.Title, Description: s.Description})
	}
	return c.JSON(http.StatusOK, out)
}

// GetSurvey handles GET /wellness/surveys/:id.
//
// @Summary      Get a survey with its questions
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Survey id"
// @Success      200  {object}  domain.Survey
// @Failure      404  {object}  errorResponse
// @Router       /wellness/surveys/{id} [get]
func (h *WellnessHandler) GetSurvey(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	survey, err := h.service.GetSurvey(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, survey)
}

// SubmitSurvey handles POST /wellness/surveys/:id/submit.
//
// @Summary      Submit survey answers
// @Tags         wellness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Survey id"
// @Param        body  body      surveySubmitRequest  true  "Answers keyed by question id"
// @Success      200   {object}  surveySubmitResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /wellness/surveys/{id}/submit [post]
func (h *WellnessHandler) SubmitSurvey(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req surveySubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	receipt, err := h.service.SubmitSurvey(c.Param("id"))
	if err != nil {
		return err
	}

	metrics.SurveySubmissionsTotal.WithLabelValues(receipt.SurveyID).Inc()
	return c.JSON(http.StatusOK, surveySubmitResponse{Message: receipt.Message, SurveyID: receipt.SurveyID})
}

// Nudges handles GET /wellness/nudges.
//
// @Summary      Personalized wellness nudges
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Nudge
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /wellness/nudges [get]
func (h *WellnessHandler) Nudges(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	nudges, err := h.service.Nudges(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}

	for _, n := range nudges {
		metrics.NudgesServedTotal.WithLabelValues(n.Type).Inc()
	}
	return c.JSON(http.StatusOK, nudges)
}
