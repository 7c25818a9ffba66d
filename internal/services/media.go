// internal/services/media.go
package services

import (
	"strings"

	"github.com/lesanlabs/SpeechExplorer/internal/models"
)

// ResolveMedia classifies a session's full-recording reference. A URL
// containing a known video-host marker becomes an embeddable video link; any
// other non-empty value is treated as a direct audio reference.
func ResolveMedia(fullSessionURL string) models.MediaInfo {
	if fullSessionURL == "" {
		return models.MediaInfo{Kind: models.MediaNone}
	}

	if strings.Contains(fullSessionURL, "youtube.com") || strings.Contains(fullSessionURL, "youtu.be") {
		return models.MediaInfo{Kind: models.MediaVideo, URL: EmbedURL(fullSessionURL)}
	}

	return models.MediaInfo{Kind: models.MediaAudio, URL: fullSessionURL}
}

// EmbedURL rewrites a video-host link into its embeddable form with fixed
// substring substitutions. This is a best-effort text transform, not a URL
// parser; unusual links may come out wrong and that is accepted. The
// "you.be" literal in the short-link rule is carried over from the source
// as-is, so real youtu.be short links are not rewritten by it (see
// media_test.go).
func EmbedURL(url string) string {
	url = strings.Replace(url, "watch?v=", "embed/", 1)
	url = strings.Replace(url, "you.be/", "www.youtube.com/embed/", 1)
	return url
}
