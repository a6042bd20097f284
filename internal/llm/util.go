package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from an LLM response.
// LLMs often wrap JSON in ```json ... ``` blocks or add conversational
// preamble/trailing text even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Locate the JSON payload: earliest object or array start wins.
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	start := objIdx
	extract := extractJSONObject
	if objIdx < 0 || (arrIdx >= 0 && arrIdx < objIdx) {
		start = arrIdx
		extract = extractJSONArray
	}
	if start < 0 {
		return text
	}
	if payload := extract(text[start:]); payload != "" {
		return payload
	}
	return text
}

// extractJSONObject returns the first balanced JSON object starting at the
// first byte of text, or "" if text does not begin with one. Braces inside
// string literals (including escaped quotes) do not affect the balance.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the first balanced JSON array starting at the
// first byte of text, or "" if text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, opening, closing byte) string {
	if len(text) == 0 || text[0] != opening {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case opening:
			if !inString {
				depth++
			}
		case closing:
			if !inString {
				depth--
				if depth == 0 {
					return text[:i+1]
				}
			}
		}
	}

	// Unbalanced payload (e.g. truncated response)
	return ""
}
