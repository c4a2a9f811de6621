/*
Package server exposes a frozen dictionary and its segmenter over HTTP.

	POST /v1/segment        {"text": "..."}        => {"tokens": [...]}
	POST /v1/segment/batch  {"lines": ["...", ...]} => {"results": [[...], ...]}
	GET  /v1/words/:word                            => {"word": "...", "definition": "..."}
	GET  /v1/complete?prefix=...&limit=n            => {"prefix": "...", "words": [...]}
	GET  /v1/stats                                  => layer statistics

The server never mutates the dictionary.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npillmayer/maxmatch"
	"github.com/npillmayer/maxmatch/plaintext/textenc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maxmatch.server'
func tracer() tracing.Trace {
	return tracing.Select("maxmatch.server")
}

const (
	// MaxBatch is the maximum number of lines of a batch request.
	MaxBatch = 1000
	// DefaultCompletions is the number of completions returned if no limit is given.
	DefaultCompletions = 20
)

// SegmentRequest is the body of POST /v1/segment.
type SegmentRequest struct {
	Text string `json:"text"`
}

// SegmentResponse is the answer to POST /v1/segment.
type SegmentResponse struct {
	Tokens []string `json:"tokens"`
}

// BatchRequest is the body of POST /v1/segment/batch.
type BatchRequest struct {
	Lines []string `json:"lines"`
}

// BatchResponse holds one token list per requested line.
type BatchResponse struct {
	Results [][]string `json:"results"`
}

// WordResponse is the answer to GET /v1/words/:word.
type WordResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// CompleteResponse is the answer to GET /v1/complete.
type CompleteResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

// Server serves segmentation requests.
type Server struct {
	dict      *maxmatch.Dictionary
	seg       *maxmatch.Segmenter
	normalize bool
	router    *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithNormalization brings request texts into NFC before segmenting them.
// Use it if the dictionary has been loaded with normalization.
func WithNormalization() Option {
	return func(s *Server) {
		s.normalize = true
	}
}

// New creates a server for dict. seg should have been created by
// dict.Segmenter; if it is nil, a default segmenter is created.
func New(dict *maxmatch.Dictionary, seg *maxmatch.Segmenter, opts ...Option) *Server {
	if seg == nil {
		seg = dict.Segmenter()
	}
	s := &Server{dict: dict, seg: seg}
	for _, opt := range opts {
		opt(s)
	}
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	api := s.router.Group("/v1")
	{
		api.POST("/segment", s.handleSegment)
		api.POST("/segment/batch", s.handleBatch)
		api.GET("/words/:word", s.handleWord)
		api.GET("/complete", s.handleComplete)
		api.GET("/stats", s.handleStats)
	}
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("serving %s on %s", s.dict.Identifier, addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	tracer().Infof("shutting down server on %s", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) segment(text string) ([]string, error) {
	if s.normalize {
		var err error
		if text, err = textenc.String([]byte(text), textenc.WithNormalization()); err != nil {
			return nil, err
		}
	}
	return s.seg.Segment(text), nil
}

func (s *Server) handleSegment(c *gin.Context) {
	var req SegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	tokens, err := s.segment(req.Text)
	if err != nil {
		tracer().Errorf("segment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SegmentResponse{Tokens: tokens})
}

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty batch"})
		return
	}
	if len(req.Lines) > MaxBatch {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("batch exceeds %d lines", MaxBatch)})
		return
	}
	results := make([][]string, len(req.Lines))
	for i, line := range req.Lines {
		tokens, err := s.segment(line)
		if err != nil {
			tracer().Errorf("segment line %d: %v", i, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results[i] = tokens
	}
	tracer().Debugf("segmented batch of %d lines", len(results))
	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

func (s *Server) handleWord(c *gin.Context) {
	word := c.Param("word")
	definition, ok := s.dict.Lookup(word)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown word %q", word)})
		return
	}
	c.JSON(http.StatusOK, WordResponse{Word: word, Definition: definition})
}

func (s *Server) handleComplete(c *gin.Context) {
	prefix := c.Query("prefix")
	limit := DefaultCompletions
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	words := s.dict.Completions(prefix, limit)
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, CompleteResponse{Prefix: prefix, Words: words})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.dict.Stats())
}
