// internal/services/export_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/lesanlabs/SpeechExplorer/internal/models"
	"github.com/lesanlabs/SpeechExplorer/internal/storage"
)

// ExportResult describes a generated transcript export.
type ExportResult struct {
	Filename string
	Content  string
}

// ExportService renders session transcripts to plain-text files in the
// export directory, one file per {session_id, lang} key. Regenerating an
// export overwrites the previous file; concurrent exports for the same key
// race and the last writer wins, which is fine for a prototype.
type ExportService struct {
	Storage *storage.FileStorage
}

// NewExportService creates an export service over the given export directory.
func NewExportService(exportDir string) (*ExportService, error) {
	fileStorage, err := storage.NewFileStorage(exportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open export directory: %w", err)
	}

	return &ExportService{Storage: fileStorage}, nil
}

// BuildDocument renders the export text for a session: per segment its id
// and resolved transcript, each followed by a newline, segment blocks joined
// by one blank line.
func BuildDocument(session *models.Session, lang string) string {
	lang = NormalizeLang(lang)

	blocks := make([]string, 0, len(session.Segments))
	for _, seg := range session.Segments {
		text := DisplayTranscript(seg.TranscriptAM, seg.TranscriptEN, lang)
		blocks = append(blocks, fmt.Sprintf("%s\n%s\n", seg.ID, text))
	}

	return strings.Join(blocks, "\n")
}

// Export writes the transcript document for a session and language to the
// export directory and returns the filename and content.
func (s *ExportService) Export(session *models.Session, lang string) (*ExportResult, error) {
	lang = NormalizeLang(lang)
	content := BuildDocument(session, lang)
	filename := fmt.Sprintf("%s_%s.txt", session.SessionID, lang)

	if err := s.Storage.SaveTextFile("", filename, []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to write export %s: %w", filename, err)
	}

	return &ExportResult{Filename: filename, Content: content}, nil
}

// Read returns the bytes of a previously generated export by filename.
func (s *ExportService) Read(filename string) ([]byte, error) {
	return s.Storage.LoadTextFile("", filename)
}
