package sponsorblock

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

var (
	bareVideoIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoIDURLRegex  = regexp.MustCompile(`(.+?)(/)(watch\?v=)?(embed/watch\?feature=player_embedded&v=)?([a-zA-Z0-9_-]{11})`)
)

// extractVideoID accepts either a bare 11-character video id or a full
// watch/embed/short URL and returns the id. Both spellings of the same
// video resolve to the same id.
func extractVideoID(input string) (string, error) {
	if bareVideoIDRegex.MatchString(input) {
		return input, nil
	}
	m := videoIDURLRegex.FindStringSubmatch(input)
	if m == nil {
		return "", &InvalidVideoIDError{Input: input}
	}
	return m[5], nil
}

// hashedVideoIDPrefix returns the first length hex characters of the
// sha256 of the video id, used by the K-anonymity segment lookup.
func hashedVideoIDPrefix(videoID string, length int) string {
	sum := sha256.Sum256([]byte(videoID))
	return hex.EncodeToString(sum[:])[:length]
}
