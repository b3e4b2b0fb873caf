package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DumpRequest is a middleware to dump incoming http requests when trace
// mode is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, true)
		if err != nil {
			log.WithFields(logrus.Fields{
				"status":    c.Writer.Status(),
				"method":    c.Request.Method,
				"requester": c.Request.Header.Get("X-Requester"),
				"path":      c.Request.URL.Path,
			}).Error("fail to dump request")
		}

		log.WithField("req", string(dump)).Debug("incoming request")
	}

	c.Next()
}
