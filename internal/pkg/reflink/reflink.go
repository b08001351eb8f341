// Package reflink pulls the publication link out of reference names such as
// `<a refstr=X href=https://... target=ref>Author et al. 2017</a>`.
package reflink

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract returns the href and text of the first anchor in name. When name
// carries no anchor it returns (nil, name). An anchor without href yields a nil href.
func Extract(name string) (*string, string) {
	if !strings.Contains(name, "<") {
		return nil, name
	}
	z := html.NewTokenizer(strings.NewReader(name))

	var (
		inAnchor bool
		href     *string
		text     strings.Builder
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if inAnchor {
				return href, strings.TrimSpace(text.String())
			}
			return nil, name
		case html.StartTagToken:
			tok := z.Token()
			if inAnchor || tok.DataAtom != atom.A {
				continue
			}
			inAnchor = true
			for _, attr := range tok.Attr {
				if attr.Key == "href" {
					v := attr.Val
					href = &v
					break
				}
			}
		case html.TextToken:
			if inAnchor {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			if !inAnchor {
				continue
			}
			if tok := z.Token(); tok.DataAtom == atom.A {
				return href, strings.TrimSpace(text.String())
			}
		}
	}
}
