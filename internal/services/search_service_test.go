// internal/services/search_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/lesanlabs/SpeechExplorer/internal/models"
)

// scenarioSessions is the store from the acceptance scenario: session A with
// two segments (Abebe, 2024-01-01), session B with one (Chala, 2024-02-01).
func scenarioSessions() []models.Session {
	return []models.Session{
		{
			SessionID: "sess-a",
			Speaker:   "Abebe",
			Date:      "2024-01-01",
			Segments: []models.Segment{
				{ID: "a-1", TranscriptAM: "አንደኛ"},
				{ID: "a-2", TranscriptAM: "ሁለተኛ", TranscriptEN: "second"},
			},
		},
		{
			SessionID: "sess-b",
			Speaker:   "Chala",
			Date:      "2024-02-01",
			Segments: []models.Segment{
				{ID: "b-1", TranscriptAM: "ሶስተኛ", TranscriptEN: "third"},
			},
		},
	}
}

func TestFlattenCountAndOrder(t *testing.T) {
	sessions := scenarioSessions()
	flat := Flatten(sessions)

	want := 0
	for _, s := range sessions {
		want += len(s.Segments)
	}
	if len(flat) != want {
		t.Fatalf("flatten dropped or duplicated segments: got %d want %d", len(flat), want)
	}

	ids := []string{flat[0].SegmentID, flat[1].SegmentID, flat[2].SegmentID}
	if ids[0] != "a-1" || ids[1] != "a-2" || ids[2] != "b-1" {
		t.Fatalf("order not preserved: %v", ids)
	}

	if flat[2].Speaker != "Chala" || flat[2].SessionID != "sess-b" {
		t.Fatalf("parent metadata not carried: %+v", flat[2])
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Fatalf("expected no segments, got %d", len(got))
	}
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	for _, q := range []string{"", "   ", "\t"} {
		result := svc.Search(flat, q, LangAmharic, 1, 100)
		if result.Total != len(flat) {
			t.Fatalf("query %q: expected %d matches, got %d", q, len(flat), result.Total)
		}
		for i, seg := range result.Segments {
			if seg.SegmentID != flat[i].SegmentID {
				t.Fatalf("query %q: order changed at %d", q, i)
			}
		}
	}
}

func TestSearchMatchesAllFields(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	cases := []struct {
		query string
		want  []string
	}{
		{"abebe", []string{"a-1", "a-2"}},     // speaker, case-insensitive
		{"2024-02", []string{"b-1"}},          // date substring
		{"ሁለተኛ", []string{"a-2"}},             // Amharic transcript
		{"THIRD", []string{"b-1"}},            // English transcript, case-insensitive
		{"nothing-matches", []string{}},       // no hits
		{"2024", []string{"a-1", "a-2", "b-1"}}, // across sessions
	}

	for _, tc := range cases {
		result := svc.Search(flat, tc.query, LangAmharic, 1, 100)
		if result.Total != len(tc.want) {
			t.Fatalf("query %q: total %d want %d", tc.query, result.Total, len(tc.want))
		}
		for i, seg := range result.Segments {
			if seg.SegmentID != tc.want[i] {
				t.Fatalf("query %q: got segment %s at %d, want %s", tc.query, seg.SegmentID, i, tc.want[i])
			}
		}
	}
}

// Matching always checks both transcripts, regardless of the display
// language. An English query must hit even when the display language is
// Amharic.
func TestSearchMatchingIgnoresLanguageSelector(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	result := svc.Search(flat, "second", LangAmharic, 1, 100)
	if result.Total != 1 || result.Segments[0].SegmentID != "a-2" {
		t.Fatalf("expected a-2 via English transcript under am display, got %+v", result.Segments)
	}
	// Display text still follows the selector.
	if result.Segments[0].Transcript != "ሁለተኛ" {
		t.Fatalf("expected Amharic display text, got %q", result.Segments[0].Transcript)
	}
}

func TestSearchDisplayTranscriptFallback(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	result := svc.Search(flat, "", LangEnglish, 1, 100)
	// a-1 has no English transcript: falls back to Amharic.
	if result.Segments[0].Transcript != "አንደኛ" {
		t.Fatalf("expected am fallback, got %q", result.Segments[0].Transcript)
	}
	if result.Segments[1].Transcript != "second" {
		t.Fatalf("expected en transcript, got %q", result.Segments[1].Transcript)
	}
}

func TestDisplayTranscriptAmharicVerbatim(t *testing.T) {
	// am shows transcript_am verbatim even when empty.
	if got := DisplayTranscript("", "english text", LangAmharic); got != "" {
		t.Fatalf("am display must be verbatim, got %q", got)
	}
	if got := DisplayTranscript("", "", LangEnglish); got != "" {
		t.Fatalf("expected empty fallback, got %q", got)
	}
}

func TestNormalizeLang(t *testing.T) {
	for _, lang := range []string{"", "am", "fr", "EN"} {
		if got := NormalizeLang(lang); got != LangAmharic {
			t.Fatalf("lang %q: expected am, got %q", lang, got)
		}
	}
	if got := NormalizeLang("en"); got != LangEnglish {
		t.Fatalf("expected en, got %q", got)
	}
}

func TestSearchPagination(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	// Scenario: q="2024", per_page=2, page=2 -> the single third match.
	result := svc.Search(flat, "2024", LangAmharic, 2, 2)
	if result.Total != 3 || result.TotalPages != 2 {
		t.Fatalf("unexpected totals: %+v", result)
	}
	if len(result.Segments) != 1 || result.Segments[0].SegmentID != "b-1" {
		t.Fatalf("unexpected page 2: %+v", result.Segments)
	}

	// Scenario: empty query, per_page=3 -> all three on one page.
	result = svc.Search(flat, "", LangAmharic, 1, 3)
	if result.Total != 3 || result.TotalPages != 1 || len(result.Segments) != 3 {
		t.Fatalf("unexpected full page: %+v", result)
	}
}

func TestSearchPageClamping(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	// Below range clamps to 1.
	result := svc.Search(flat, "", LangAmharic, -5, 2)
	if result.Page != 1 || result.Segments[0].SegmentID != "a-1" {
		t.Fatalf("low page not clamped: %+v", result)
	}

	// Above range clamps to the last page.
	result = svc.Search(flat, "", LangAmharic, 99, 2)
	if result.Page != 2 || len(result.Segments) != 1 || result.Segments[0].SegmentID != "b-1" {
		t.Fatalf("high page not clamped: %+v", result)
	}
}

func TestSearchZeroMatchesStillOnePage(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	result := svc.Search(flat, "zzz-no-match", LangAmharic, 7, 3)
	if result.Total != 0 || result.TotalPages != 1 || result.Page != 1 {
		t.Fatalf("zero-match pagination wrong: %+v", result)
	}
	if len(result.Segments) != 0 {
		t.Fatalf("expected empty page, got %+v", result.Segments)
	}
}

func TestSearchPerPageDefault(t *testing.T) {
	// Build more segments than the default page size.
	var sessions []models.Session
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5"} {
		sessions = append(sessions, models.Session{
			SessionID: id,
			Segments:  []models.Segment{{ID: id + "-seg"}},
		})
	}
	flat := Flatten(sessions)
	svc := NewSearchService()

	result := svc.Search(flat, "", LangAmharic, 1, 0)
	if result.PerPage != DefaultPerPage {
		t.Fatalf("expected default per_page %d, got %d", DefaultPerPage, result.PerPage)
	}
	if len(result.Segments) != DefaultPerPage || result.TotalPages != 2 {
		t.Fatalf("unexpected default paging: %+v", result)
	}
}

func TestSearchPagesDoNotOverlap(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()

	seen := map[string]bool{}
	for page := 1; page <= 2; page++ {
		result := svc.Search(flat, "", LangAmharic, page, 2)
		for _, seg := range result.Segments {
			if seen[seg.SegmentID] {
				t.Fatalf("segment %s appears on more than one page", seg.SegmentID)
			}
			seen[seg.SegmentID] = true
		}
	}
	if len(seen) != 3 {
		t.Fatalf("pages do not cover all segments: %v", seen)
	}
}

// Every match must contain the query in at least one searchable field and
// every excluded segment in none, per the matching contract.
func TestSearchMatchContract(t *testing.T) {
	flat := Flatten(scenarioSessions())
	svc := NewSearchService()
	q := "2024-01"

	result := svc.Search(flat, q, LangAmharic, 1, 100)
	inResult := map[string]bool{}
	for _, seg := range result.Segments {
		inResult[seg.SegmentID] = true
	}

	for _, seg := range flat {
		hit := strings.Contains(strings.ToLower(seg.Speaker), q) ||
			strings.Contains(strings.ToLower(seg.Date), q) ||
			strings.Contains(strings.ToLower(seg.TranscriptAM), q) ||
			strings.Contains(strings.ToLower(seg.TranscriptEN), q)
		if hit != inResult[seg.SegmentID] {
			t.Fatalf("segment %s: contract violated (hit=%v, included=%v)", seg.SegmentID, hit, inResult[seg.SegmentID])
		}
	}
}
