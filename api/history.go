package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 30

func (s *Server) listHistory(c *gin.Context) {
	var params struct {
		Limit int64 `form:"limit"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.store.ListHistory(c.GetString("requester"), limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// scoreTrend returns the average score over the trailing window for the
// dashboard trend ring.
func (s *Server) scoreTrend(c *gin.Context) {
	var params struct {
		Days int `form:"days"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	days := params.Days
	if days <= 0 {
		days = 7
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(days - 1))

	avg, err := s.store.GetScoreAverage(c.GetString("requester"), start, end)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":    days,
		"average": math.Round(avg*10) / 10,
	})
}
