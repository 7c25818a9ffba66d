// internal/services/search_service.go
package services

import (
	"strings"

	"github.com/lesanlabs/SpeechExplorer/internal/models"
)

const (
	// LangAmharic and LangEnglish are the two supported transcript languages.
	LangAmharic = "am"
	LangEnglish = "en"

	// DefaultPerPage is the page size used when the request gives none.
	DefaultPerPage = 3
)

// SearchResult is one page of matching segments plus pagination totals.
type SearchResult struct {
	Segments   []models.FlatSegment
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// SearchService runs free-text search and pagination over flattened segments.
type SearchService struct{}

// NewSearchService creates a search service.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// NormalizeLang maps any selector that is not exactly "en" to Amharic.
func NormalizeLang(lang string) string {
	if lang == LangEnglish {
		return LangEnglish
	}
	return LangAmharic
}

// DisplayTranscript resolves the transcript text shown for a language.
// Amharic is shown verbatim even when empty; English falls back to Amharic
// when the English transcript is missing.
func DisplayTranscript(am, en, lang string) string {
	if lang == LangEnglish {
		if en != "" {
			return en
		}
		return am
	}
	return am
}

// Flatten expands each session's segments into FlatSegments carrying the
// parent session's metadata. Segment order within a session is preserved and
// sessions keep their load order, so the output is deterministic for a fixed
// store. Pure function: the input is not modified.
func Flatten(sessions []models.Session) []models.FlatSegment {
	var flat []models.FlatSegment
	for _, session := range sessions {
		for _, seg := range session.Segments {
			flat = append(flat, models.FlatSegment{
				SessionID:      session.SessionID,
				Speaker:        session.Speaker,
				Date:           session.Date,
				FullSessionURL: session.FullSessionURL,
				SegmentID:      seg.ID,
				AudioURL:       seg.AudioURL,
				TranscriptAM:   seg.TranscriptAM,
				TranscriptEN:   seg.TranscriptEN,
				Start:          seg.Start,
			})
		}
	}
	return flat
}

// matches reports whether q (already lower-cased, non-empty) is a substring
// of any searchable field. Both transcripts are always checked, independent
// of the display language.
func matches(seg *models.FlatSegment, q string) bool {
	return strings.Contains(strings.ToLower(seg.Speaker), q) ||
		strings.Contains(strings.ToLower(seg.Date), q) ||
		strings.Contains(strings.ToLower(seg.TranscriptAM), q) ||
		strings.Contains(strings.ToLower(seg.TranscriptEN), q)
}

// Search filters the flat segments by query and returns the requested page.
// An empty or whitespace-only query matches everything. Page numbers outside
// [1, total_pages] are clamped, never rejected; perPage values below 1 take
// the default. Each returned segment has its display transcript resolved for
// lang.
func (s *SearchService) Search(flat []models.FlatSegment, query, lang string, page, perPage int) *SearchResult {
	lang = NormalizeLang(lang)
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	q := strings.ToLower(strings.TrimSpace(query))

	filtered := flat
	if q != "" {
		filtered = make([]models.FlatSegment, 0, len(flat))
		for i := range flat {
			if matches(&flat[i], q) {
				filtered = append(filtered, flat[i])
			}
		}
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageSegments := make([]models.FlatSegment, end-start)
	copy(pageSegments, filtered[start:end])
	for i := range pageSegments {
		pageSegments[i].Transcript = DisplayTranscript(pageSegments[i].TranscriptAM, pageSegments[i].TranscriptEN, lang)
	}

	return &SearchResult{
		Segments:   pageSegments,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
