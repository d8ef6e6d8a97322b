package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"docsum/internal/config"
	"docsum/internal/domain"
	"docsum/internal/fileproc"
	"docsum/internal/language"
	"docsum/internal/pipeline"
	"docsum/internal/sentence"
	"docsum/internal/stats"
)

// Handler serves the summarization API. Backends are assembled once at
// startup; each request picks one and runs its own fully isolated
// pipeline instance.
type Handler struct {
	cfg     *config.AppConfig
	local   domain.Backend
	cluster domain.Backend
}

// NewHandler creates the API handler. cluster may be nil when no
// distributed backend is configured.
func NewHandler(cfg *config.AppConfig, local, cluster domain.Backend) *Handler {
	return &Handler{cfg: cfg, local: local, cluster: cluster}
}

// SummarizeResponse is the JSON body of a successful summarization.
type SummarizeResponse struct {
	Summary            []string          `json:"summary"`
	Method             string            `json:"method"`
	SentencesProcessed int               `json:"sentences_processed"`
	ProcessingTimeSecs float64           `json:"processing_time_secs"`
	TextStatistics     *stats.Statistics `json:"text_statistics,omitempty"`
	Timings            *StageTimings     `json:"timings,omitempty"`
}

// StageTimings reports per-stage wall time in seconds.
type StageTimings struct {
	Gather    float64 `json:"gather_secs"`
	Vectorize float64 `json:"vectorize_secs"`
	Score     float64 `json:"score_secs"`
	Total     float64 `json:"total_secs"`
}

// Summarize handles POST /summarize. The request carries either a text
// form field or a file upload, plus the run parameters.
func (h *Handler) Summarize(c *gin.Context) {
	start := time.Now()

	text, ok := h.requestText(c)
	if !ok {
		return
	}

	numSentences, ok := h.intForm(c, "num_sentences", h.cfg.Pipeline.DefaultNumSentences)
	if !ok {
		return
	}
	if numSentences <= 0 {
		badRequest(c, "num_sentences must be positive")
		return
	}
	factor, ok := h.floatForm(c, "early_termination_factor", h.cfg.Pipeline.DefaultFactor)
	if !ok {
		return
	}
	if factor < 1.0 || factor > 10.0 {
		badRequest(c, "early_termination_factor must be between 1.0 and 10.0")
		return
	}

	lang := c.DefaultPostForm("language", h.cfg.Language.Default)
	analyzer, err := language.New(lang)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	backend, ok := h.pickBackend(c)
	if !ok {
		return
	}

	src := sentence.FromString(text, analyzer, h.cfg.Pipeline.MinSentenceLength)
	result, err := pipeline.Run(c.Request.Context(), src, backend, pipeline.Options{
		NumSentences:           numSentences,
		EarlyTerminationFactor: factor,
		MinBatch:               h.cfg.Pipeline.MinBatch,
	})
	if err != nil {
		h.writeRunError(c, err)
		return
	}

	resp := SummarizeResponse{
		Summary:            result.Summary,
		Method:             result.Method,
		SentencesProcessed: result.SentencesProcessed,
	}
	if boolForm(c, "compute_statistics") {
		// Independent pass over the same sentence set; never touches
		// the ranking state.
		st, err := stats.Collect(sentence.FromString(text, analyzer, h.cfg.Pipeline.MinSentenceLength))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "statistics pass failed: " + err.Error()})
			return
		}
		resp.TextStatistics = st
	}
	if boolForm(c, "profile") {
		resp.Timings = &StageTimings{
			Gather:    result.Timings.Gather.Seconds(),
			Vectorize: result.Timings.Vectorize.Seconds(),
			Score:     result.Timings.Score.Seconds(),
			Total:     result.Timings.Total.Seconds(),
		}
	}
	resp.ProcessingTimeSecs = time.Since(start).Seconds()
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /health: API liveness plus per-worker cluster
// reachability when a cluster backend is configured.
func (h *Handler) Health(c *gin.Context) {
	status := gin.H{"status": "healthy", "api": "healthy"}
	if h.cluster == nil {
		status["cluster"] = gin.H{"status": "not configured"}
		c.JSON(http.StatusOK, status)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := h.cluster.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["cluster"] = gin.H{"status": "unhealthy", "detail": err.Error()}
	} else {
		status["cluster"] = gin.H{"status": "healthy"}
	}
	c.JSON(http.StatusOK, status)
}

// requestText resolves the input text from either the text form field or
// an uploaded file, rejecting requests that provide both or neither.
func (h *Handler) requestText(c *gin.Context) (string, bool) {
	text := c.PostForm("text")
	fileHeader, fileErr := c.FormFile("file")
	hasFile := fileErr == nil

	if text == "" && !hasFile {
		badRequest(c, "either file or text must be provided")
		return "", false
	}
	if text != "" && hasFile {
		badRequest(c, "provide either a file or text, not both")
		return "", false
	}
	if !hasFile {
		return text, true
	}

	f, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "cannot read uploaded file: "+err.Error())
		return "", false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(c, "cannot read uploaded file: "+err.Error())
		return "", false
	}
	decoded, err := fileproc.Extract(fileHeader.Filename, data)
	if err != nil {
		badRequest(c, err.Error())
		return "", false
	}
	return decoded, true
}

// pickBackend validates the requested execution method against what is
// actually available. The core never falls back silently, so an
// unreachable cluster is reported here as 503.
func (h *Handler) pickBackend(c *gin.Context) (domain.Backend, bool) {
	method := c.DefaultPostForm("method", h.cfg.Backend.Default)
	switch method {
	case "local":
		return h.local, true
	case "cluster":
		if h.cluster == nil {
			unavailable(c, "cluster backend is not configured")
			return nil, false
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.cluster.Ping(ctx); err != nil {
			unavailable(c, err.Error())
			return nil, false
		}
		return h.cluster, true
	default:
		badRequest(c, "unknown method: "+method+", want local or cluster")
		return nil, false
	}
}

func (h *Handler) writeRunError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInput), errors.Is(err, domain.ErrInvalidRequest):
		badRequest(c, err.Error())
	case errors.Is(err, domain.ErrBackendUnavailable):
		unavailable(c, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) intForm(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.PostForm(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, key+" must be an integer")
		return 0, false
	}
	return v, true
}

func (h *Handler) floatForm(c *gin.Context, key string, fallback float64) (float64, bool) {
	raw := c.PostForm(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(c, key+" must be a number")
		return 0, false
	}
	return v, true
}

func boolForm(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.PostForm(key))
	return err == nil && v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func unavailable(c *gin.Context, msg string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
}
