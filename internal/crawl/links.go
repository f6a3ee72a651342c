package crawl

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks walks the parsed HTML tree and returns every href value
// found on an <a> element, skipping anything inside <script> or
// <style>. Body text extraction lives in the extract package, which
// works at the byte level per the indexing pipeline's requirements;
// this walk only needs structure, so the DOM parser the pack already
// depends on (golang.org/x/net/html) is the right tool here.
func ExtractLinks(body []byte) []string {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var hrefs []string
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		isSkippable := n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
		if isSkippable {
			skipDepth++
		}

		if skipDepth == 0 && n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			for _, attr := range n.Attr {
				if strings.EqualFold(attr.Key, "href") {
					if val := strings.TrimSpace(attr.Val); val != "" {
						hrefs = append(hrefs, val)
					}
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if isSkippable {
			skipDepth--
		}
	}
	walk(root)
	return hrefs
}
