package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-experience-api/internal/api/metrics"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

// DashboardHandler handles HTTP requests for the personalized dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /dashboard.
//
// @Summary      Fetch the personalized dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	data, err := h.service.GetDashboard(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.DashboardViewsTotal.WithLabelValues(id.Role).Inc()
	return c.JSON(http.StatusOK, toDashboardResponse(data))
}

// UpdateConfig handles POST /dashboard/config.
//
// @Summary      Update widget visibility
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      configUpdateRequest  true  "Subset of flags to change"
// @Success      200   {object}  configResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dashboard/config [post]
func (h *DashboardHandler) UpdateConfig(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req configUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	flags, err := h.service.UpdateConfig(c.Request().Context(), id.UserID, ports.ConfigUpdateInput{
		ShowLeaves:     req.ShowLeaves,
		ShowLearning:   req.ShowLearning,
		ShowCompliance: req.ShowCompliance,
		ShowProfile:    req.ShowProfile,
		ShowAttendance: req.ShowAttendance,
		ShowPayroll:    req.ShowPayroll,
		ShowCareer:     req.ShowCareer,
		ShowWellness:   req.ShowWellness,
	})
	if err != nil {
		return err
	}

	metrics.ConfigUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, toConfigResponse(*flags))
}

func toConfigResponse(f ports.ConfigFlags) configResponse {
	return configResponse{
		ShowLeaves:     f.ShowLeaves,
		ShowLearning:   f.ShowLearning,
		ShowCompliance: f.ShowCompliance,
		ShowProfile:    f.ShowProfile,
		ShowAttendance: f.ShowAttendance,
		ShowPayroll:    f.ShowPayroll,
		ShowCareer:     f.ShowCareer,
		ShowWellness:   f.ShowWellness,
	}
}

func toLeaveResponse(v ports.LeaveRequestView) leaveRequestResponse {
	return leaveRequestResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		Department:   v.Department,
		FromDate:     v.FromDate,
		ToDate:       v.ToDate,
		Reason:       v.Reason,
		Status:       v.Status,
	}
}

func toDashboardResponse(data *ports.DashboardData) dashboardResponse {
	resp := dashboardResponse{Config: toConfigResponse(data.Config)}

	for _, l := range data.LeaveRequests {
		resp.LeaveRequests = append(resp.LeaveRequests, toLeaveResponse(l))
	}
	for _, u := range data.TeamMembers {
		resp.TeamMembers = append(resp.TeamMembers, teamMemberResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			Department: u.Department,
			Skills:     u.Skills,
		})
	}
	for _, l := range data.PendingLeaves {
		resp.PendingLeaves = append(resp.PendingLeaves, toLeaveResponse(l))
	}
	return resp
}
