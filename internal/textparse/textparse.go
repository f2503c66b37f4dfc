package textparse

import "strings"

// #region markers

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
	toolOpen   = "<tool_call>"
	toolClose  = "</tool_call>"
)

// #endregion markers

// #region extract

// ExtractReasoning returns the trimmed text between the first <think> marker
// and the first </think> marker that follows it. Empty string when either
// marker is missing or out of order.
func ExtractReasoning(response string) string {
	return extractBetween(response, thinkOpen, thinkClose)
}

// ExtractToolCall returns the trimmed text between the first <tool_call>
// marker and the first </tool_call> marker that follows it, with the same
// absence rule as ExtractReasoning.
func ExtractToolCall(response string) string {
	return extractBetween(response, toolOpen, toolClose)
}

// extractBetween is a single-pass, first-match extraction. Nested or repeated
// marker pairs beyond the first occurrence are not handled.
func extractBetween(s, open, close string) string {
	start := strings.Index(s, open)
	if start < 0 {
		return ""
	}
	start += len(open)
	end := strings.Index(s[start:], close)
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(s[start : start+end])
}

// #endregion extract

// #region word-count

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// #endregion word-count
