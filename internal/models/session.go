// internal/models/session.go
package models

// UnknownSessionID is substituted when a record file carries no session_id,
// so flattening and lookups never deal with an empty key.
const UnknownSessionID = "unknown"

// Session is one recorded parliamentary sitting.
type Session struct {
	SessionID      string    `json:"session_id"`
	Speaker        string    `json:"speaker"`
	Date           string    `json:"date"` // free-form, display and substring search only
	FullSessionURL string    `json:"full_session_url,omitempty"`
	Segments       []Segment `json:"segments"`
}

// Segment is one utterance within a session. Transcript fields are each
// optional; English display falls back to Amharic when empty.
type Segment struct {
	ID           string `json:"id"`
	AudioURL     string `json:"audio_url,omitempty"`
	TranscriptAM string `json:"transcript_am,omitempty"`
	TranscriptEN string `json:"transcript_en,omitempty"`
	Start        string `json:"start,omitempty"` // display-only timestamp label
}

// FlatSegment is a Segment merged with its parent session's metadata.
// It is derived per request and never persisted.
type FlatSegment struct {
	SessionID      string `json:"session_id"`
	Speaker        string `json:"speaker"`
	Date           string `json:"date"`
	FullSessionURL string `json:"full_session_url,omitempty"`
	SegmentID      string `json:"segment_id"`
	AudioURL       string `json:"audio_url,omitempty"`
	TranscriptAM   string `json:"transcript_am,omitempty"`
	TranscriptEN   string `json:"transcript_en,omitempty"`
	Start          string `json:"start,omitempty"`

	// Transcript is the display text resolved for the requested language.
	Transcript string `json:"transcript"`
}

// MediaKind classifies a session's full-recording reference.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaNone  MediaKind = "none"
)

// MediaInfo describes how a session's full recording should be embedded.
type MediaInfo struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url,omitempty"` // embed URL for video, audio path for audio
}

// TranscriptLine is one segment's display entry on the session detail view.
type TranscriptLine struct {
	SegmentID  string `json:"segment_id"`
	AudioURL   string `json:"audio_url,omitempty"`
	Start      string `json:"start,omitempty"`
	Transcript string `json:"transcript"`
}

// SessionDetail is the full payload for a single session view.
type SessionDetail struct {
	SessionID      string           `json:"session_id"`
	Speaker        string           `json:"speaker"`
	Date           string           `json:"date"`
	FullSessionURL string           `json:"full_session_url,omitempty"`
	Media          MediaInfo        `json:"media"`
	Lang           string           `json:"lang"`
	Transcript     []TranscriptLine `json:"transcript"`
}
