package content

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user-authored blog content before it reaches the
// render layer. Posts keep basic formatting; comments are plain text.
type Sanitizer struct {
	postPolicy    *bluemonday.Policy
	commentPolicy *bluemonday.Policy
}

// NewSanitizer builds the policies for the community feed
func NewSanitizer() *Sanitizer {
	post := bluemonday.NewPolicy()

	post.AllowElements("p", "br", "blockquote")
	post.AllowElements("strong", "b", "em", "i", "u")
	post.AllowElements("ul", "ol", "li")

	// Links and images survive in posts, but only over safe schemes
	post.AllowAttrs("href").OnElements("a")
	post.AllowAttrs("src", "alt").OnElements("img")
	post.RequireParseableURLs(true)
	post.AllowURLSchemes("http", "https", "mailto")

	return &Sanitizer{
		postPolicy:    post,
		commentPolicy: bluemonday.StrictPolicy(),
	}
}

// Post sanitizes a blog post body
func (s *Sanitizer) Post(html string) string {
	return s.postPolicy.Sanitize(html)
}

// Comment strips comments down to plain text
func (s *Sanitizer) Comment(html string) string {
	return strings.TrimSpace(s.commentPolicy.Sanitize(html))
}
