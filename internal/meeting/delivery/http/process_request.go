package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
)

// processCreateReq binds the create meeting body and resolves the caller.
func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return createReq{}, sc, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "meeting.delivery.http.processCreateReq: %v", err)
		return req, sc, errInvalidBody.WithDetail(err.Error())
	}
	return req, sc, req.validate()
}

// processScope reads the session left by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	s, ok := session.FromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return s.Scope(), nil
}

// reissueSession writes a fresh session cookie when the provider token changed.
func (h *handler) reissueSession(c *gin.Context, tok *oauth2.Token) {
	if tok == nil {
		return
	}
	ctx := c.Request.Context()
	s, ok := session.FromContext(ctx)
	if !ok {
		return
	}
	if err := h.sessions.WriteCookie(c, s.WithToken(tok)); err != nil {
		h.l.Errorf(ctx, "meeting.delivery.http.reissueSession: %v", err)
	}
}
