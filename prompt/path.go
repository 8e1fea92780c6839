package prompt

import (
	"strings"

	"github.com/grovetools/promptline/config"
)

// Shorten splits a marker-tokenized path right after its last separator glyph.
// head ends with the glyph and tail holds the final component; head+tail is
// always the input. Without a separator head is empty and tail is the whole path.
func Shorten(path string) (head, tail string) {
	i := strings.LastIndex(path, config.PathGlyph)
	if i < 0 {
		return "", path
	}
	cut := i + len(config.PathGlyph)
	return path[:cut], path[cut:]
}
