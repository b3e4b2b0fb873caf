package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chw708/teresa-api/schema"
	"github.com/chw708/teresa-api/score"
	"github.com/chw708/teresa-api/store"
	"github.com/chw708/teresa-api/utils"
)

// validateMorning rejects answers that violate the declared question
// shapes before anything reaches the scorer. questions is the day's sheet;
// required questions must be answered and multiple-choice answers must be
// one of the declared options.
func validateMorning(record schema.CheckInRecord, questions []schema.DailyQuestion) error {
	if record.Fatigue != nil && (*record.Fatigue < 1 || *record.Fatigue > 10) {
		return fmt.Errorf("fatigue rating %d outside 1-10", *record.Fatigue)
	}
	if record.SleepHours != nil && (*record.SleepHours < 0 || *record.SleepHours > 24) {
		return fmt.Errorf("sleep hours %.1f outside 0-24", *record.SleepHours)
	}
	for id, answer := range record.Answers {
		if answer.Kind == schema.AnswerKindScale && (answer.Scale < 1 || answer.Scale > 10) {
			return fmt.Errorf("answer %s: scale value %d outside 1-10", id, answer.Scale)
		}
	}

	for _, q := range questions {
		answer, ok := record.Answers[q.ID]
		answered := ok && (answer.Kind != schema.AnswerKindText || strings.TrimSpace(answer.Text) != "")

		if q.Required && !answered {
			return fmt.Errorf("question %s is required", q.ID)
		}

		if q.Type == schema.QuestionTypeMultiple && answered {
			if answer.Kind != schema.AnswerKindText {
				return fmt.Errorf("answer %s: multiple-choice answer must be text", q.ID)
			}
			valid := false
			for _, opt := range q.Options {
				if answer.Text == opt {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("answer %s: %q is not one of the declared options", q.ID, answer.Text)
			}
		}
	}
	return nil
}

// submitMorning scores the morning check-in, stores the day's entry and
// returns the result with stretch recommendations.
func (s *Server) submitMorning(c *gin.Context) {
	var params struct {
		Record schema.CheckInRecord `json:"record"`
		Lang   string               `json:"lang"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	now := time.Now().UTC()

	var questions []schema.DailyQuestion
	sheet, err := s.store.GetDailySheet(utils.DateString(now))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if sheet != nil {
		questions = sheet.Questions
	}

	if err := validateMorning(params.Record, questions); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorAnswerOutOfRange, err)
		return
	}

	result := score.CalculateCheckInResult(params.Record)
	stretches := s.recommendStretches(params.Record.Stiffness, params.Lang, now)

	requester := c.GetString("requester")
	if err := s.store.SaveMorning(requester, utils.DateString(now), params.Record, result, stretches); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":     result.Score,
		"advice":    result.Advice,
		"stretches": stretches,
	})
}

func (s *Server) recommendStretches(areas []string, lang string, now time.Time) []schema.StretchPick {
	table, err := store.LoadStretchTable(lang)
	if err != nil || len(table) == 0 {
		table = schema.DefaultStretchTable
	}
	picks := score.RecommendStretchesFrom(table, areas, now)
	return localizeAreaNames(picks, lang)
}

// localizeAreaNames fills in the display name for each picked area so the
// widget can render labels without its own translation table.
func localizeAreaNames(picks []schema.StretchPick, lang string) []schema.StretchPick {
	for i := range picks {
		name, err := store.ResolveAreaName(picks[i].Area, lang)
		if err != nil || name == "" {
			name = picks[i].Area
		}
		picks[i].AreaName = name
	}
	return picks
}

func (s *Server) submitMidday(c *gin.Context) {
	var params schema.MiddayCheckIn
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requester := c.GetString("requester")
	if err := s.store.SaveMidday(requester, utils.DateString(time.Now()), params); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) submitNight(c *gin.Context) {
	var params schema.NightCheckIn
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requester := c.GetString("requester")
	if err := s.store.SaveNight(requester, utils.DateString(time.Now()), params); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
