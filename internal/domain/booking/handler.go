package booking

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/domain/directory"
	"github.com/carebook/carebook/internal/platform/timefmt"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/booking/sessions", h.CreateSession)
	api.GET("/booking/sessions/:id", h.GetSession)
	api.PUT("/booking/sessions/:id/slot", h.SelectSlot)
	api.PUT("/booking/sessions/:id/form", h.UpdateForm)
	api.POST("/booking/sessions/:id/submit", h.Submit)
}

type createSessionRequest struct {
	DoctorID int    `json:"doctor_id"`
	Slot     string `json:"slot"`
}

func (h *Handler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.CreateSession(c.Request().Context(), req.DoctorID, req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		case errors.Is(err, ErrSlotNotInSchedule):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "slot is not in the doctor's schedule")
		case errors.Is(err, timefmt.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "slot is not a valid date")
		default:
			return echo.NewHTTPError(http.StatusServiceUnavailable, "doctor directory unavailable")
		}
	}
	return c.JSON(http.StatusCreated, sess.Snapshot())
}

func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.svc.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionLookupError(err)
	}
	// A session without its appointment context cannot be confirmed; send
	// the client back to the directory.
	v := sess.Snapshot()
	if v.DoctorName == "" || v.Date == "" || v.Time == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.JSON(http.StatusOK, v)
}

type selectSlotRequest struct {
	Slot string `json:"slot"`
}

// SelectSlot swaps the session onto another slot. A rejected slot leaves
// the current selection untouched.
func (h *Handler) SelectSlot(c echo.Context) error {
	var req selectSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.SelectSlot(c.Request().Context(), c.Param("id"), req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotInSchedule):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "slot is not in the doctor's schedule")
		case errors.Is(err, timefmt.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "slot is not a valid date")
		case errors.Is(err, ErrSessionClosed):
			return echo.NewHTTPError(http.StatusGone, "booking session already confirmed")
		case errors.Is(err, ErrSubmitInFlight):
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		case errors.Is(err, directory.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		default:
			return sessionLookupError(err)
		}
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

func (h *Handler) UpdateForm(c echo.Context) error {
	var form PatientForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.UpdateForm(c.Request().Context(), c.Param("id"), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionClosed):
			return echo.NewHTTPError(http.StatusGone, "booking session already confirmed")
		case errors.Is(err, ErrSubmitInFlight):
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		default:
			return sessionLookupError(err)
		}
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

func (h *Handler) Submit(c echo.Context) error {
	sess, err := h.svc.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidForm):
			return c.JSON(http.StatusUnprocessableEntity, sess.Snapshot())
		case errors.Is(err, ErrSubmitInFlight):
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		case errors.Is(err, ErrSessionClosed):
			return echo.NewHTTPError(http.StatusGone, "booking session already confirmed")
		case errors.Is(err, ErrServiceUnavailable):
			return c.JSON(http.StatusServiceUnavailable, sess.Snapshot())
		default:
			if sess != nil {
				// Gateway failed some other way; the session carries the
				// user-facing message and stays open for a retry.
				return c.JSON(http.StatusServiceUnavailable, sess.Snapshot())
			}
			return sessionLookupError(err)
		}
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

func sessionLookupError(err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "booking session not found")
	case errors.Is(err, ErrSessionExpired):
		return echo.NewHTTPError(http.StatusGone, "booking session expired")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
