package reporting

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard", h.Dashboard)
	api.GET("/reports", h.Report)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Report(c echo.Context) error {
	tf := Timeframe(c.QueryParam("timeframe"))
	switch tf {
	case TimeframeWeek, TimeframeMonth, TimeframeQuarter, TimeframeYear:
	case "":
		tf = TimeframeMonth
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid timeframe")
	}
	r, err := h.svc.Report(c.Request().Context(), tf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}
