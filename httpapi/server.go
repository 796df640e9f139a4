// Package httpapi exposes the query engine over HTTP: the ranked and
// single-field search endpoints plus the PageRank/page-view lookup
// endpoints described in SPEC_FULL.md §6.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aosen/wikisearch/query"
)

// Server wires an Engine to a gin.Engine's routes.
type Server struct {
	engine *query.Engine
	logger *zap.Logger
	router *gin.Engine
}

// NewServer builds the HTTP surface over qe. logger may be nil.
func NewServer(qe *query.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{engine: qe, logger: logger}
	s.router = gin.New()
	s.router.Use(gin.Recovery(), ginZapLogger(logger))
	s.routes()
	return s
}

// Handler returns the http.Handler the server should be mounted under.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.GET("/", s.handleHealth)
	s.router.GET("/search", s.handleSearch(s.engine.Search))
	s.router.GET("/search_body", s.handleSearch(s.engine.SearchBody))
	s.router.GET("/search_title", s.handleSearch(s.engine.SearchTitle))
	s.router.GET("/search_anchor", s.handleSearch(s.engine.SearchAnchor))
	s.router.POST("/get_pagerank", s.handleGetPageRank)
	s.router.POST("/get_pageview", s.handleGetPageView)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "wikisearch is up")
}

// searchHit is the wire shape of one ranked result: [doc_id_string,
// title_string] (spec.md §6: doc_id is serialized as a string).
type searchHit [2]any

func (s *Server) handleSearch(search func(string) []query.Result) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("query")
		results := search(q)
		hits := make([]searchHit, len(results))
		for i, r := range results {
			hits[i] = searchHit{strconv.FormatUint(uint64(r.DocID), 10), r.Title}
		}
		c.JSON(http.StatusOK, hits)
	}
}

func (s *Server) handleGetPageRank(c *gin.Context) {
	var ids []uint32
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = s.engine.Catalog.PageRank.Get(id)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetPageView(c *gin.Context) {
	var ids []uint32
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = s.engine.Catalog.PageViews.Get(id)
	}
	c.JSON(http.StatusOK, out)
}

// ginZapLogger adapts zap to gin's logging middleware hook, the same
// way the teacher's build pipeline routes its own progress events
// through a structured logger rather than the standard log package.
func ginZapLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
