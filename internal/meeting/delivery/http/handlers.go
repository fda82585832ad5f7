package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "meeting-scheduler/pkg/errors"
	"meeting-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a Google Meet meeting
// @Description Books a one hour Google Calendar event with a Meet conference for the
// @Description signed-in user. Instant meetings start two minutes from now; scheduled
// @Description meetings need a future scheduledTime (RFC3339 or YYYY-MM-DDTHH:MM).
// @Tags        Meeting
// @Accept      json
// @Produce     json
// @Security    SessionToken
// @Param       body body createReq true "Meeting data"
// @Success     200  {object} meetingResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     405  {object} response.Resp "Method not allowed"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Failed to create meeting"
// @Router      /api/create-meeting [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	h.reissueSession(c, output.RefreshedToken)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, errCreateFailed))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List meetings
// @Description Returns the meetings created by the signed-in user since the server
// @Description started, oldest first, with pairs of meetings whose times overlap.
// @Tags        Meeting
// @Produce     json
// @Security    SessionToken
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Router      /api/meetings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, pkgErrors.ErrInternalServerError))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Clear godoc
// @Summary     Clear meetings
// @Description Forgets every meeting recorded for the signed-in user. Calendar events are kept.
// @Tags        Meeting
// @Produce     json
// @Security    SessionToken
// @Success     200 {object} response.Resp "Meetings cleared"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Router      /api/meetings [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Clear(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err, pkgErrors.ErrInternalServerError))
		return
	}

	response.OK(c, response.Resp{Message: "Meetings cleared"})
}

// CalendarStatus godoc
// @Summary     Calendar reachability
// @Description Lists the signed-in user's calendars to confirm the Calendar API accepts
// @Description their token.
// @Tags        Meeting
// @Produce     json
// @Security    SessionToken
// @Success     200 {object} statusResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     500 {object} response.Resp "Failed to reach calendar"
// @Router      /api/calendar/status [GET]
func (h *handler) CalendarStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CalendarStatus(ctx, sc)
	h.reissueSession(c, output.RefreshedToken)
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarStatus: %v", err)
		response.Error(c, h.mapError(err, errCalendarFailed))
		return
	}

	response.OK(c, h.newStatusResp(output))
}
