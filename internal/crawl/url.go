package crawl

import (
	"net/url"
	"strings"
)

// CleanHref resolves href against base, dropping empty hrefs,
// fragment-only hrefs, and javascript:/data: pseudo-URLs. The fragment
// of the resolved URL is stripped so "#section" variants of the same
// page collapse to one frontier entry.
func CleanHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "mailto:") {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}

	refURL, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := baseURL.ResolveReference(refURL)
	resolved.Fragment = ""
	return resolved.String()
}

// SameHost reports whether a and b are both parseable URLs on the same
// host, the boundary a same-host crawl is not allowed to cross.
func SameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host == ub.Host
}
