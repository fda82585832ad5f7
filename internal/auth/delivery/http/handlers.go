package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/pkg/response"
)

// SignIn godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent screen asking for profile and calendar
// @Description access with offline tokens.
// @Tags        Auth
// @Success     302
// @Router      /api/auth/signin [GET]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SignIn(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setStateCookie(c, output.State, stateCookieMaxAge)
	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Google OAuth callback
// @Description Exchanges the authorization code, sets the session cookie and redirects
// @Description to the application.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued at sign-in"
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Sign-in failed"
// @Router      /api/auth/callback/google [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, expected, err := h.processCallbackReq(c)
	h.setStateCookie(c, "", -1)
	if err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Callback: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput(expected))
	if err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.sessions.WriteCookie(c, output.Session); err != nil {
		h.l.Errorf(ctx, "sessions.WriteCookie: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.cfg.BaseURL)
}

// Session godoc
// @Summary     Current session
// @Description Returns the signed-in user, or an empty object when signed out.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	s, err := h.sessions.FromRequest(c)
	if err != nil {
		response.OK(c, sessionResp{})
		return
	}
	response.OK(c, newSessionResp(s))
}

// SignOut godoc
// @Summary     Sign out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "Signed out"
// @Router      /api/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	h.sessions.ClearCookie(c)
	response.OK(c, response.Resp{Message: "Signed out"})
}

func (h *handler) setStateCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, value, maxAge, "/api/auth", "", h.sessions.CookieSecure(), true)
}
