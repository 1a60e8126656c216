// Package server exposes the reasoning engine over HTTP. The routes mirror
// the CLI surface: full reasoning, lightweight classification, and
// introspection of the tier table and Truth Floor.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/cache"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/engine"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/ontology"
)

// Server wires the engine and result cache behind a gin router.
type Server struct {
	engine *engine.Engine
	cache  cache.Cache // nil when caching is disabled
	config *model.Config
	router *gin.Engine
}

// ReasonRequest is the body of POST /reason.
type ReasonRequest struct {
	Input string `json:"input" binding:"required"`
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ReasonResponse wraps a reasoning result with transport metadata.
type ReasonResponse struct {
	RequestID string        `json:"request_id"`
	Cached    bool          `json:"cached"`
	Result    *model.Result `json:"result"`
}

// New creates a server around an engine.
func New(eng *engine.Engine, cfg *model.Config) *Server {
	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	s := &Server{
		engine: eng,
		cache:  resultCache,
		config: cfg,
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured gin router (exposed for tests).
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	return s.router.Run(addr)
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.GET("/truth-floor", s.handleTruthFloor)
	router.GET("/tiers", s.handleTiers)
	router.POST("/reason", s.handleReason)
	router.POST("/classify", s.handleClassify)

	return router
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Sovereign Reasoning Engine API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /reason":     "Execute 8-stage reasoning on input",
			"POST /classify":   "Classify text into the Truth Token Ontology",
			"GET /health":      "Health check and Truth Floor verification",
			"GET /truth-floor": "Get Truth Floor axioms",
			"GET /tiers":       "Get 13 Truth Tiers information",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	registry := s.engine.Registry()
	if err := registry.VerifyIntegrity(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  fmt.Sprintf("health check failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "ok",
		"truth_floor_verified": true,
		"truth_floor_axioms":   registry.Count(),
	})
}

func (s *Server) handleTruthFloor(c *gin.Context) {
	registry := s.engine.Registry()
	verified := registry.VerifyIntegrity() == nil

	c.JSON(http.StatusOK, gin.H{
		"axioms":             registry.Axioms(),
		"count":              registry.Count(),
		"integrity_verified": verified,
	})
}

func (s *Server) handleTiers(c *gin.Context) {
	type tierInfo struct {
		Tier        int     `json:"tier"`
		Name        string  `json:"name"`
		Resistance  float64 `json:"resistance"`
		Description string  `json:"description"`
	}

	tiers := make([]tierInfo, 0, model.TierCount)
	for _, t := range model.Tiers() {
		tiers = append(tiers, tierInfo{
			Tier:        int(t),
			Name:        t.Name(),
			Resistance:  t.Resistance(),
			Description: t.Description(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"tiers":  tiers,
		"count":  len(tiers),
		"thesis": "Truth is computationally cheap. Lies are expensive.",
	})
}

func (s *Server) handleReason(c *gin.Context) {
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	requestID := uuid.NewString()

	// Serve identical inputs from the result cache; the reasoning core
	// itself is deterministic aside from timing metadata.
	key := cache.Key(req.Input)
	if s.cache != nil {
		if data, found := s.cache.Get(key); found {
			var cached model.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				c.JSON(http.StatusOK, ReasonResponse{
					RequestID: requestID,
					Cached:    true,
					Result:    &cached,
				})
				return
			}
		}
	}

	result, err := s.engine.Reason(c.Request.Context(), req.Input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("reasoning failed: %v", err)})
		return
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(key, data, 0)
		}
	}

	c.JSON(http.StatusOK, ReasonResponse{
		RequestID: requestID,
		Cached:    false,
		Result:    result,
	})
}

func (s *Server) handleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":           req.Text,
		"classification": ontology.Classify(req.Text),
	})
}
