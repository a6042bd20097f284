package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe = regexp.MustCompile(`\s+`)
	blankRunRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes document text for downstream parsing and matching.
// Line endings collapse to LF, space runs inside a line collapse to one
// space, and blank-line runs shrink to a single separator. Markdown
// headings and bullets keep their markers so section structure survives.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = cleanLine(line)
	}

	result := blankRunRe.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line. Headings lose their indent, bullets keep
// it, everything else keeps its indent with inner whitespace collapsed.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := strings.Repeat(" ", len(line)-len(trimmed))
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return indent + trimmed
	}
	return indent + spaceRunRe.ReplaceAllString(strings.TrimSpace(line), " ")
}
