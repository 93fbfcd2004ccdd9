package server

import (
	"context"
	"net/http"

	"github.com/acmedash/seeder/internal/seed"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Runner executes one seeding pass.
type Runner interface {
	Run(ctx context.Context) (seed.Summary, error)
}

// Server exposes the seeding trigger over HTTP.
type Server struct {
	engine *gin.Engine
	seeder Runner
	log    *zap.Logger
}

func NewServer(engine *gin.Engine, seeder Runner, log *zap.Logger) *Server {
	return &Server{
		engine: engine,
		seeder: seeder,
		log:    log,
	}
}

// RegisterRoutes mounts the seed trigger. GET is kept alongside POST
// so the endpoint can be hit from a browser.
func (s *Server) RegisterRoutes() {
	s.engine.GET("/api/seed", s.HandleSeed)
	s.engine.POST("/api/seed", s.HandleSeed)
}

type seedSuccessResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Counts  seed.Summary `json:"counts"`
}

type seedFailureResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// HandleSeed runs a seeding pass and reports per-collection counts, or
// a classified failure payload with a remediation hint.
func (s *Server) HandleSeed(c *gin.Context) {
	summary, err := s.seeder.Run(c.Request.Context())
	if err != nil {
		serr := seed.Classify(err)
		s.log.Error("seeding failed",
			zap.String("kind", string(serr.Kind)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, seedFailureResponse{
			Success:    false,
			Error:      string(serr.Kind),
			Message:    serr.Message,
			Suggestion: serr.Suggestion,
		})
		return
	}

	c.JSON(http.StatusOK, seedSuccessResponse{
		Success: true,
		Message: "Database seeded successfully",
		Counts:  summary,
	})
}
