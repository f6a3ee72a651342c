// Package extract turns raw HTML into plain body text and a title,
// without pulling in a DOM parser: a byte-level scan is enough for the
// job and is what the rest of the pipeline (tokenizer, stemmer) already
// operates on.
package extract

import "strings"

// Text strips tags, <script>, and <style> content from html and collapses
// runs of whitespace to single spaces, with no leading or trailing
// space left in the result. Bytes outside tags/script/style
// are emitted verbatim; every '>' emits a single space so adjacent
// elements don't glue words together ("<p>a</p><p>b</p>" -> "a b").
func Text(html string) string {
	var body strings.Builder
	body.Grow(len(html))

	inTag := false
	inScript := false
	inStyle := false

	for i := 0; i < len(html); i++ {
		c := html[i]

		if c == '<' {
			inTag = true

			end := i + 10
			if end > len(html) {
				end = len(html)
			}
			lower := strings.ToLower(html[i:end])

			switch {
			case strings.HasPrefix(lower, "<script"):
				inScript = true
			case strings.HasPrefix(lower, "</script"):
				inScript = false
			case strings.HasPrefix(lower, "<style"):
				inStyle = true
			case strings.HasPrefix(lower, "</style"):
				inStyle = false
			}
			continue
		}

		if c == '>' {
			inTag = false
			body.WriteByte(' ')
			continue
		}

		if !inTag && !inScript && !inStyle {
			body.WriteByte(c)
		}
	}

	return collapseWhitespace(body.String())
}

func collapseWhitespace(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	lastSpace := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIISpace(c) {
			if !lastSpace {
				out.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		out.WriteByte(c)
		lastSpace = false
	}
	return strings.TrimSuffix(out.String(), " ")
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Title extracts the document title. It looks for <title>...</title>
// (or <title ...>...</title>) case-insensitively; if the inner text
// contains an em-dash or hyphen surrounded by spaces (the common
// "Page — Wikipedia" suffix), it truncates there. Failing that, it falls
// back to the first <h1>...</h1>, run through Text. Failing that,
// "Untitled".
func Title(html string) string {
	lowerHTML := strings.ToLower(html)

	start := strings.Index(lowerHTML, "<title>")
	if start == -1 {
		start = strings.Index(lowerHTML, "<title ")
	}

	if start != -1 {
		gt := strings.IndexByte(html[start:], '>')
		if gt != -1 {
			contentStart := start + gt + 1
			end := strings.Index(lowerHTML[contentStart:], "</title>")
			if end != -1 {
				title := html[contentStart : contentStart+end]
				return truncateWikiSuffix(title)
			}
		}
	}

	start = strings.Index(lowerHTML, "<h1")
	if start != -1 {
		gt := strings.IndexByte(html[start:], '>')
		if gt != -1 {
			contentStart := start + gt + 1
			end := strings.Index(lowerHTML[contentStart:], "</h1>")
			if end != -1 {
				return Text(html[contentStart : contentStart+end])
			}
		}
	}

	return "Untitled"
}

func truncateWikiSuffix(title string) string {
	if idx := strings.Index(title, " — "); idx != -1 {
		title = title[:idx]
	}
	if idx := strings.Index(title, " - "); idx != -1 {
		title = title[:idx]
	}
	return title
}
