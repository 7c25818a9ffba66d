// internal/api/handlers.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lesanlabs/SpeechExplorer/internal/errors"
	"github.com/lesanlabs/SpeechExplorer/internal/services"
)

// Handler serves the page and API routes.
type Handler struct {
	SessionService *services.SessionService
	SearchService  *services.SearchService
	ExportService  *services.ExportService
	Response       *ResponseHelper
}

// NewHandler creates the request handler over the given services.
func NewHandler(sessionService *services.SessionService, searchService *services.SearchService, exportService *services.ExportService) *Handler {
	return &Handler{
		SessionService: sessionService,
		SearchService:  searchService,
		ExportService:  exportService,
		Response:       NewResponseHelper(),
	}
}

// APIResponse is the standard API response envelope.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// PaginationMeta carries paging totals alongside a result page.
type PaginationMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse is an APIResponse with pagination metadata.
type PaginatedResponse struct {
	*APIResponse
	Meta *PaginationMeta `json:"meta,omitempty"`
}

// listParams are the shared query parameters of the explorer surfaces.
type listParams struct {
	Query   string
	Lang    string
	Page    int
	PerPage int
}

// parseListParams reads q/lang/page/per_page with the documented defaults.
// Unparseable numbers fall back to the default rather than erroring.
func parseListParams(c *gin.Context) listParams {
	params := listParams{
		Query: c.Query("q"),
		Lang:  services.NormalizeLang(c.Query("lang")),
		Page:  1,
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		params.Page = page
	}

	params.PerPage = services.DefaultPerPage
	if perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "")); err == nil && perPage >= 1 {
		params.PerPage = perPage
	}

	return params
}

// search runs the load → flatten → query pipeline for the list surfaces.
func (h *Handler) search(params listParams) (*services.SearchResult, error) {
	sessions, err := h.SessionService.LoadAll()
	if err != nil {
		return nil, err
	}

	flat := services.Flatten(sessions)
	return h.SearchService.Search(flat, params.Query, params.Lang, params.Page, params.PerPage), nil
}

// ========================================
// Page handlers
// ========================================

// IndexPage renders the landing page.
func (h *Handler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Parliament Speech Explorer",
	})
}

// ExplorerPage renders the searchable, paginated segment list.
func (h *Handler) ExplorerPage(c *gin.Context) {
	params := parseListParams(c)

	result, err := h.search(params)
	if err != nil {
		c.String(http.StatusInternalServerError, "speech archive is unavailable: %v", err)
		return
	}

	c.HTML(http.StatusOK, "explorer.html", gin.H{
		"title":      "Explorer",
		"query":      params.Query,
		"lang":       params.Lang,
		"segments":   result.Segments,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
		"prevPage":   result.Page - 1,
		"nextPage":   result.Page + 1,
		"hasPrev":    result.Page > 1,
		"hasNext":    result.Page < result.TotalPages,
	})
}

// SessionPage renders one session's full transcript with embedded media.
func (h *Handler) SessionPage(c *gin.Context) {
	sessionID := c.Param("id")
	lang := services.NormalizeLang(c.Query("lang"))

	detail, err := h.SessionService.Detail(sessionID, lang)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "session %s not found", sessionID)
			return
		}
		c.String(http.StatusInternalServerError, "speech archive is unavailable: %v", err)
		return
	}

	c.HTML(http.StatusOK, "session.html", gin.H{
		"title":   "Session " + detail.SessionID,
		"session": detail,
		"isVideo": detail.Media.Kind == "video",
		"isAudio": detail.Media.Kind == "audio",
	})
}

// DownloadTranscript regenerates a session's transcript export and serves it
// as a plain-text attachment.
func (h *Handler) DownloadTranscript(c *gin.Context) {
	sessionID := c.Param("id")
	lang := services.NormalizeLang(c.Query("lang"))

	session, err := h.SessionService.Get(sessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "session %s not found", sessionID)
			return
		}
		c.String(http.StatusInternalServerError, "speech archive is unavailable: %v", err)
		return
	}

	result, err := h.ExportService.Export(session, lang)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to export transcript: %v", err)
		return
	}

	h.Response.DownloadResponse(c, result.Content, result.Filename, "text/plain; charset=utf-8")
}

// ========================================
// API handlers
// ========================================

// ListSegments returns a page of matching speech segments.
func (h *Handler) ListSegments(c *gin.Context) {
	params := parseListParams(c)

	result, err := h.search(params)
	if err != nil {
		h.Response.InternalError(c, "failed to load speech archive", err.Error())
		return
	}

	h.Response.PaginatedSuccess(c, result.Segments, &PaginationMeta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetSession returns one session's detail payload.
func (h *Handler) GetSession(c *gin.Context) {
	sessionID := c.Param("id")
	lang := services.NormalizeLang(c.Query("lang"))

	detail, err := h.SessionService.Detail(sessionID, lang)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			h.Response.NotFound(c, "session not found", sessionID)
			return
		}
		h.Response.InternalError(c, "failed to load speech archive", err.Error())
		return
	}

	h.Response.Success(c, detail)
}

// ExportSession writes the transcript export for a session and returns it as
// a download.
func (h *Handler) ExportSession(c *gin.Context) {
	sessionID := c.Param("id")
	lang := services.NormalizeLang(c.Query("lang"))

	session, err := h.SessionService.Get(sessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			h.Response.NotFound(c, "session not found", sessionID)
			return
		}
		h.Response.InternalError(c, "failed to load speech archive", err.Error())
		return
	}

	result, err := h.ExportService.Export(session, lang)
	if err != nil {
		h.Response.InternalError(c, "failed to export transcript", err.Error())
		return
	}

	h.Response.DownloadResponse(c, result.Content, result.Filename, "text/plain; charset=utf-8")
}
