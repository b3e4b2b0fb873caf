package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chw708/teresa-api/utils"
)

// dailyQuestions serves today's question sheet, generating and caching it
// on the first request of the day. Every client sees the same ids for the
// whole day.
func (s *Server) dailyQuestions(c *gin.Context) {
	now := time.Now().UTC()
	date := utils.DateString(now)

	sheet, err := s.store.GetDailySheet(date)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if sheet == nil {
		generated := s.generator.SheetFor(c.Request.Context(), now)
		if err := s.store.SaveDailySheet(generated); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}

		// a concurrent first request may have won the upsert; serve the
		// stored sheet so everyone agrees on ids
		sheet, err = s.store.GetDailySheet(date)
		if err != nil || sheet == nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      sheet.Date,
		"questions": sheet.Questions,
	})
}
