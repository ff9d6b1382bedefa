package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// user_id and role must be present, and manager tokens must carry a
// department for the team queries to be scoped.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get("user_id").(uint)
	if userID == 0 {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	department, _ := c.Get("department").(string)
	if role == domain.RoleManager && department == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing department")
	}

	return ports.Identity{UserID: userID, Role: role, Department: department}, nil
}
