package render

import (
	"fmt"
	"strings"
)

const utilityStylesheetURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"

const fragmentShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link href="%s" rel="stylesheet">
%s</head>
<body>
%s
</body>
</html>`

// ComposeDocument merges generated markup and optional CSS into a single
// renderable HTML document.
//
// Complete documents keep their structure: the CSS is injected as a style
// block before </head>, or a head is synthesised when the document has none.
// Fragments are wrapped in a minimal boilerplate that links a utility
// stylesheet so unstyled markup still renders sensibly.
func ComposeDocument(html, css string) string {
	styleBlock := ""
	if strings.TrimSpace(css) != "" {
		styleBlock = "<style>\n" + css + "\n</style>\n"
	}

	if isCompleteDocument(html) {
		if styleBlock == "" {
			return html
		}
		return injectStyle(html, styleBlock)
	}
	return fmt.Sprintf(fragmentShell, utilityStylesheetURL, styleBlock, html)
}

func isCompleteDocument(html string) bool {
	lower := strings.ToLower(html)
	return strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html")
}

func injectStyle(html, styleBlock string) string {
	lower := strings.ToLower(html)

	if idx := strings.Index(lower, "</head>"); idx >= 0 {
		return html[:idx] + styleBlock + html[idx:]
	}

	// No head at all. Synthesise one right after the opening html tag.
	if idx := strings.Index(lower, "<html"); idx >= 0 {
		if end := strings.Index(lower[idx:], ">"); end >= 0 {
			at := idx + end + 1
			return html[:at] + "\n<head>\n" + styleBlock + "</head>" + html[at:]
		}
	}
	return styleBlock + html
}
