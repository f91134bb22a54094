package reddit2ebook

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-reddit2ebook/internal/assets"
	"github.com/alnah/go-reddit2ebook/internal/fileutil"
	"github.com/alnah/go-reddit2ebook/internal/markup"
)

// HTMLConverter renders the markdown document to a standalone HTML file
// in-process, without an external converter. Extra converter arguments are
// ignored.
type HTMLConverter struct {
	CSS      string
	markdown *markup.GoldmarkConverter
}

// NewHTMLConverter creates an HTMLConverter using the named style. An empty
// assetPath uses the embedded styles only; otherwise styles found in
// {assetPath}/styles take precedence.
func NewHTMLConverter(style, assetPath string) (*HTMLConverter, error) {
	if style == "" {
		style = assets.DefaultStyle
	}
	loader, err := assets.NewResolver(assetPath)
	if err != nil {
		return nil, err
	}
	css, err := loader.LoadStyle(style)
	if err != nil {
		return nil, err
	}
	return &HTMLConverter{CSS: css, markdown: markup.NewGoldmarkConverter()}, nil
}

// Convert reads req.InputPath and writes the HTML page to req.OutputPath.
func (c *HTMLConverter) Convert(ctx context.Context, req ConversionRequest) error {
	doc, err := os.ReadFile(req.InputPath) // #nosec G304 -- path produced by the pipeline
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrConversion, req.InputPath, err)
	}

	fm, body, err := markup.SplitFrontMatter(string(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}

	fragment, err := c.markdown.ToHTML(ctx, markup.Preprocess(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}

	page := markup.Page(fm.Title, c.CSS, fragment)
	if err := fileutil.WriteFileAtomic(req.OutputPath, page, filePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrConversion, req.OutputPath, err)
	}
	return nil
}

// IsHTMLOutput reports whether output names an HTML file.
func IsHTMLOutput(output string) bool {
	return fileutil.HasExt(output, "html") || fileutil.HasExt(output, "htm")
}

// Compile-time interface implementation checks.
var (
	_ DocumentConverter = (*EbookConverter)(nil)
	_ DocumentConverter = (*HTMLConverter)(nil)
	_ CommandRunner     = (*ExecRunner)(nil)
)
