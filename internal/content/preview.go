package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/project-jobexec/board-client/internal/domain"
)

// Preview is the collapsed form of a post shown in the feed list
type Preview struct {
	PostID  string
	Excerpt string
	Images  []string
	Links   []string
}

// maxExcerptLen bounds the excerpt, cutting on a rune boundary
const maxExcerptLen = 240

// BuildPreview collapses a sanitized post into an excerpt plus the
// image and link URLs its body references.
func BuildPreview(post *domain.BlogPost, sanitizer *Sanitizer) (*Preview, error) {
	clean := sanitizer.Post(post.Content)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return nil, err
	}

	preview := &Preview{PostID: post.ID}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			preview.Images = append(preview.Images, src)
		}
	})
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			preview.Links = append(preview.Links, href)
		}
	})

	preview.Excerpt = truncate(collapseSpace(doc.Text()), maxExcerptLen)
	return preview, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
