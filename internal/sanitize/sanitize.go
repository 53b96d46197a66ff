// Package sanitize strips lightweight markdown syntax from generated text
// before it is displayed or persisted.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	headingRe      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldRe         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe       = regexp.MustCompile(`\*(.*?)\*`)
	boldUnderRe    = regexp.MustCompile(`__(.*?)__`)
	italicUnderRe  = regexp.MustCompile(`\b_(.*?)_\b`)
	linkRe         = regexp.MustCompile(`\[(.*?)\]\((?:.*?)\)`)
	fencedCodeRe   = regexp.MustCompile("```[a-zA-Z]*\\n?([\\s\\S]*?)```")
	inlineCodeRe   = regexp.MustCompile("`([^`]+)`")
	bulletRe       = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedRe     = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	blankRunsRe    = regexp.MustCompile(`\n\s*\n`)
)

// Strip removes markdown headings, bold/italic markers, links (keeping the
// link text), fenced and inline code markers, and list markers. Prose and
// double line breaks are left intact. Strip is total and idempotent.
func Strip(text string) string {
	if text == "" {
		return ""
	}
	out := fencedCodeRe.ReplaceAllString(text, "$1")
	out = inlineCodeRe.ReplaceAllString(out, "$1")
	out = headingRe.ReplaceAllString(out, "")
	out = boldRe.ReplaceAllString(out, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	out = boldUnderRe.ReplaceAllString(out, "$1")
	out = italicUnderRe.ReplaceAllString(out, "$1")
	out = linkRe.ReplaceAllString(out, "$1")
	out = bulletRe.ReplaceAllString(out, "")
	out = numberedRe.ReplaceAllString(out, "")
	out = blankRunsRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
