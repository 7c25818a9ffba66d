// internal/services/session_service.go
package services

import (
	"fmt"
	"log"

	apperrors "github.com/lesanlabs/SpeechExplorer/internal/errors"
	"github.com/lesanlabs/SpeechExplorer/internal/models"
	"github.com/lesanlabs/SpeechExplorer/internal/storage"
)

// SessionService loads session records from the speech directory. The store
// is read fresh on every call: the prototype favors zero staleness over
// caching, so dropping a JSON file into the directory is all it takes to
// publish a session.
type SessionService struct {
	Storage *storage.FileStorage
}

// NewSessionService creates a session service over the given speech directory.
func NewSessionService(speechDir string) (*SessionService, error) {
	fileStorage, err := storage.NewFileStorage(speechDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open speech directory: %w", err)
	}

	return &SessionService{Storage: fileStorage}, nil
}

// LoadAll reads every *.json record in the speech directory, ordered by file
// name ascending. Malformed records are logged and skipped; one bad file
// never fails the load. An unreadable directory is an operational failure
// and is returned as an error, so it stays distinguishable from an empty
// archive.
func (s *SessionService) LoadAll() ([]models.Session, error) {
	names, err := s.Storage.ListFiles("", ".json")
	if err != nil {
		return nil, apperrors.NewProcessingError("failed to read speech directory", err)
	}

	sessions := make([]models.Session, 0, len(names))
	for _, name := range names {
		var session models.Session
		if err := s.Storage.LoadJSONFile("", name, &session); err != nil {
			log.Printf("warning: skipping unreadable session record %s: %v", name, err)
			continue
		}

		// Validate once at load time so downstream code never has to
		// guard against an empty key.
		if session.SessionID == "" {
			session.SessionID = models.UnknownSessionID
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

// Get returns the session with the given id. Lookup is a linear scan over
// the loaded records; with duplicate ids the first occurrence wins.
func (s *SessionService) Get(sessionID string) (*models.Session, error) {
	sessions, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			return &sessions[i], nil
		}
	}

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("session %s not found", sessionID), nil)
}

// Detail resolves a session into its display payload: metadata, the media
// descriptor, and per-segment transcripts in the requested language.
func (s *SessionService) Detail(sessionID, lang string) (*models.SessionDetail, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	lang = NormalizeLang(lang)

	transcript := make([]models.TranscriptLine, 0, len(session.Segments))
	for _, seg := range session.Segments {
		transcript = append(transcript, models.TranscriptLine{
			SegmentID:  seg.ID,
			AudioURL:   seg.AudioURL,
			Start:      seg.Start,
			Transcript: DisplayTranscript(seg.TranscriptAM, seg.TranscriptEN, lang),
		})
	}

	return &models.SessionDetail{
		SessionID:      session.SessionID,
		Speaker:        session.Speaker,
		Date:           session.Date,
		FullSessionURL: session.FullSessionURL,
		Media:          ResolveMedia(session.FullSessionURL),
		Lang:           lang,
		Transcript:     transcript,
	}, nil
}
