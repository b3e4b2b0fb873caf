package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/chw708/teresa-api/assistant"
	"github.com/chw708/teresa-api/daily"
	"github.com/chw708/teresa-api/store"
)

var log = logrus.WithField("prefix", "api")

// Server is the http surface of the service.
type Server struct {
	store     store.HealthStore
	responder *assistant.Responder
	generator *daily.Generator
	traceMode bool

	httpServer *http.Server
}

func NewServer(healthStore store.HealthStore, responder *assistant.Responder, generator *daily.Generator, traceMode bool) *Server {
	return &Server{
		store:     healthStore,
		responder: responder,
		generator: generator,
		traceMode: traceMode,
	}
}

// Run starts serving on addr and blocks until the listener stops.
func (s *Server) Run(addr string) error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	v1 := r.Group("/v1")
	v1.Use(s.recognizeRequester)
	{
		checkin := v1.Group("/checkin")
		{
			checkin.POST("/morning", s.submitMorning)
			checkin.POST("/midday", s.submitMidday)
			checkin.POST("/night", s.submitNight)
			checkin.GET("/history", s.listHistory)
			checkin.GET("/trend", s.scoreTrend)
		}

		v1.GET("/questions/daily", s.dailyQuestions)

		v1.POST("/chat", s.chat)
		v1.GET("/chat/history", s.chatHistory)
		v1.GET("/chat/stream", s.chatStream)
	}

	return r
}

// recognizeRequester reads the caller identity header. The full account
// middleware lives in front of this service; here the header is enough.
func (s *Server) recognizeRequester(c *gin.Context) {
	requester := c.GetHeader("X-Requester")
	if requester == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownRequester)
		return
	}

	c.Set("requester", requester)
	c.Next()
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
