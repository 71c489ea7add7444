package formatter

import (
	"fmt"

	"racewiki/internal/scraper"
)

// Formats lists the accepted output formats; the first one is the default.
var Formats = []string{"wiki", "text", "html", "markdown", "json", "csv"}

func Format(content scraper.Content, format string) (string, error) {
	switch format {
	case "wiki":
		return content.ToWiki()
	case "html":
		return content.ToHTML()
	case "text":
		return content.ToText()
	case "markdown":
		return content.ToMarkdown()
	case "csv":
		return content.ToCSV()
	case "json":
		b, err := content.ToJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
