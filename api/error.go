package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = ErrorResponse{Code: 500, Message: "internal server error"}
	errorInvalidParameters  = ErrorResponse{Code: 1001, Message: "invalid parameters"}
	errorCannotParseRequest = ErrorResponse{Code: 1002, Message: "cannot parse request"}
	errorUnknownRequester   = ErrorResponse{Code: 1003, Message: "unknown requester"}
	errorAnswerOutOfRange   = ErrorResponse{Code: 1100, Message: "answer out of range"}
)

func abortWithEncoding(c *gin.Context, code int, resp ErrorResponse, errors ...error) {
	for _, err := range errors {
		log.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"code":  resp.Code,
			"error": err,
		}).Error("api error")
	}

	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
