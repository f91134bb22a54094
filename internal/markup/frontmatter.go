package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrFrontMatter indicates the document's front matter block is malformed.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterFence opens and closes a front matter block.
const frontMatterFence = "---"

// FrontMatter holds the metadata fields the document header carries.
type FrontMatter struct {
	Title string `yaml:"title"`
}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// Markdown body. A document without front matter is returned unchanged with
// an empty FrontMatter.
func SplitFrontMatter(doc string) (FrontMatter, string, error) {
	var fm FrontMatter

	if !strings.HasPrefix(doc, frontMatterFence+"\n") {
		return fm, doc, nil
	}

	rest := doc[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence+"\n")
	var block, body string
	switch {
	case end >= 0:
		block = rest[:end]
		body = rest[end+len(frontMatterFence)+2:]
	case strings.HasSuffix(rest, "\n"+frontMatterFence):
		block = strings.TrimSuffix(rest, "\n"+frontMatterFence)
	default:
		return fm, "", fmt.Errorf("%w: missing closing %q", ErrFrontMatter, frontMatterFence)
	}

	if strings.TrimSpace(block) != "" {
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}

	return fm, body, nil
}
