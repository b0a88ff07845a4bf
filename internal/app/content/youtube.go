package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
)

var (
	watchIDPattern  = regexp.MustCompile(`(?:youtube\.com/(?:embed/|v/|watch\?v=|watch\?.+&v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	shortsIDPattern = regexp.MustCompile(`shorts/([a-zA-Z0-9_-]+)`)
)

// ExtractVideoID pulls the video id out of a YouTube URL. Standard watch
// URLs, embed/v URLs, youtu.be short links and shorts URLs are supported.
func ExtractVideoID(link string) (string, error) {
	if strings.Contains(link, "shorts/") {
		if m := shortsIDPattern.FindStringSubmatch(link); len(m) == 2 {
			return m[1], nil
		}
		return "", fmt.Errorf("%w: %s", errs.ErrUnrecognizedVideoURL, link)
	}

	if m := watchIDPattern.FindStringSubmatch(link); len(m) == 2 {
		return m[1], nil
	}
	return "", fmt.Errorf("%w: %s", errs.ErrUnrecognizedVideoURL, link)
}

// IsRecognizedVideo reports whether the bookmark is a video hosted on a
// URL shape we can pull a transcript for.
func IsRecognizedVideo(bookmark *models.Bookmark) bool {
	if bookmark.Type != models.TypeVideo {
		return false
	}
	_, err := ExtractVideoID(bookmark.Link)
	return err == nil
}
