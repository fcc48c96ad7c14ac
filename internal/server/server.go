package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/bot"
)

// Server is the HTTP front for the bot: one webhook endpoint plus a
// health check.
type Server struct {
	handler *bot.Handler
	logger  *zap.SugaredLogger
	http    *http.Server
}

// Options configures the HTTP surface.
type Options struct {
	Port           int
	Env            string // "production" switches gin to release mode
	AllowedOrigins []string
}

// New builds the gin engine and wraps it in an http.Server. Call Run to
// start serving.
func New(handler *bot.Handler, opts Options, logger *zap.SugaredLogger) *Server {
	if opts.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{handler: handler, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/api/messages", s.postMessages)
	r.GET("/healthz", s.health)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// postMessages decodes one activity and returns the bot's reply.
// conversationUpdate activities greet each newly added member that is
// not the bot itself; anything else gets an empty 200.
func (s *Server) postMessages(c *gin.Context) {
	var activity Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity payload"})
		return
	}

	switch activity.Type {
	case activityMessage:
		if activity.From.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "activity missing from.id"})
			return
		}
		name := activity.From.Name
		if name == "" {
			name = "User"
		}
		reply := s.handler.HandleMessage(c.Request.Context(), activity.From.ID, name, activity.Text)
		c.JSON(http.StatusOK, textReply(reply))

	case activityConversationUpdate:
		for _, m := range activity.MembersAdded {
			if m.ID != activity.Recipient.ID {
				c.JSON(http.StatusOK, textReply(s.handler.WelcomeMessage()))
				return
			}
		}
		c.Status(http.StatusOK)

	default:
		c.Status(http.StatusOK)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

// Run serves until ctx is cancelled, then shuts down gracefully with a
// 10 second drain window.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Infow("http server listening", "addr", s.http.Addr)
		}
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if s.logger != nil {
		s.logger.Infow("shutting down http server")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
