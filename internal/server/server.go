package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ppiankov/verbtrainer/internal/model"
	"github.com/ppiankov/verbtrainer/internal/quiz"
	"github.com/ppiankov/verbtrainer/internal/store"
)

// Server is the HTTP adapter around the verb store, session composer, and
// grader. It owns routing, CORS, rate limiting, and error-to-status
// mapping; all quiz semantics live in the wrapped components.
type Server struct {
	cfg      *model.Config
	store    *store.Store
	composer *quiz.Composer
	grader   *quiz.Grader
	engine   *gin.Engine
}

// New wires the HTTP adapter around the given components
func New(cfg *model.Config, st *store.Store, composer *quiz.Composer, grader *quiz.Grader) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		composer: composer,
		grader:   grader,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	if s.cfg.Server.RateLimit > 0 {
		r.Use(RateLimit(NewClientLimiter(s.cfg.Server.RateLimit, s.cfg.Server.RateBurst)))
	}

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/session/start", s.handleStart)
	api.POST("/session/submit", s.handleSubmit)

	// Serve the static frontend when present
	if dir := s.cfg.Server.FrontendDir; dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			r.Static("/static", dir)
			r.GET("/", func(c *gin.Context) {
				c.File(filepath.Join(dir, "index.html"))
			})
		}
	}

	return r
}

// Run starts the HTTP server on the configured address
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Server.Addr)
}

// Handler returns the underlying router for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	count, err := s.store.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Service unhealthy: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "verbs_loaded": count})
}

func (s *Server) handleStart(c *gin.Context) {
	count := s.cfg.Session.DefaultCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("invalid count: %q", raw)})
			return
		}
		count = n
	}
	if count < 1 || count > s.cfg.Session.MaxCount {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("count must be between 1 and %d", s.cfg.Session.MaxCount),
		})
		return
	}

	session, err := s.composer.StartSession(count)
	if err != nil {
		s.fail(c, err, "Failed to start session")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := s.grader.GradeSession(req.Answers)
	if err != nil {
		s.fail(c, err, "Failed to grade session")
		return
	}

	// The session ID is echoed back untouched; no server-side state ties it
	// to the originally selected verbs.
	result.SessionID = req.SessionID
	c.JSON(http.StatusOK, result)
}

// fail maps component errors onto HTTP status codes: validation faults and
// unknown verbs are the caller's, everything else is reported generically.
func (s *Server) fail(c *gin.Context, err error, generic string) {
	if errors.Is(err, quiz.ErrValidation) || errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": generic})
}
