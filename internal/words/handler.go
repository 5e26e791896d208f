package words

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gematria/internal/gematria"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", h.calculate)      // POST /gematria/calculate
	rg.GET("/word/:word", h.wordGematria)   // GET /gematria/word/:word
	rg.GET("/breakdown/:word", h.breakdown) // GET /gematria/breakdown/:word
	rg.POST("/top", h.top)                  // POST /gematria/top
}

type calculateReq struct {
	Word string `json:"word"`
}

// wordJSON mirrors the stored row without exposing id or timestamps.
type wordJSON struct {
	Word       string `json:"word"`
	Normalized string `json:"normalized"`
	Gematria   int    `json:"gematria"`
}

func (h *Handler) calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.respondValue(c, req.Word)
}

func (h *Handler) wordGematria(c *gin.Context) {
	h.respondValue(c, c.Param("word"))
}

// respondValue computes and returns the gematria of word; it never
// touches the store.
func (h *Handler) respondValue(c *gin.Context, word string) {
	normalized := gematria.Normalize(word)
	if normalized == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word must contain at least one Hebrew letter"})
		return
	}

	c.JSON(http.StatusOK, wordJSON{
		Word:       word,
		Normalized: normalized,
		Gematria:   gematria.Value(normalized),
	})
}

func (h *Handler) breakdown(c *gin.Context) {
	word := c.Param("word")
	normalized := gematria.Normalize(word)
	if normalized == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word must contain at least one Hebrew letter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"word":       word,
		"normalized": normalized,
		"gematria":   gematria.Value(normalized),
		"letters":    gematria.Breakdown(normalized),
	})
}

type topReq struct {
	Gematria int `json:"gematria"`
	Limit    int `json:"limit"`
}

func (h *Handler) top(c *gin.Context) {
	var req topReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if req.Gematria < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gematria must be non-negative"})
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultTopLimit
	}
	if req.Limit < 1 || req.Limit > maxTopLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := h.Repo.CountByValue(ctx, req.Gematria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}

	items, err := h.Repo.TopByValue(ctx, req.Gematria, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	out := make([]wordJSON, 0, len(items))
	for _, w := range items {
		out = append(out, wordJSON{Word: w.Text, Normalized: w.Normalized, Gematria: w.Gematria})
	}

	c.JSON(http.StatusOK, gin.H{
		"gematria": req.Gematria,
		"count":    total,
		"words":    out,
	})
}
