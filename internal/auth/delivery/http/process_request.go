package http

import (
	"github.com/gin-gonic/gin"
)

// processCallbackReq binds the provider redirect and the state cookie we set at sign-in.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, string, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, "", errMissingCode.WithDetail(err.Error())
	}
	if req.Error != "" {
		return req, "", errSignInCancelled.WithDetail(req.Error)
	}
	expected, _ := c.Cookie(stateCookieName)
	return req, expected, nil
}
