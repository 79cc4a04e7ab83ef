package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/project-jobexec/board-client/internal/domain"
)

// BlogPosts lists the community feed
func (c *Client) BlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/blog", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// BlogPost fetches one post by id
func (c *Client) BlogPost(ctx context.Context, postID string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/blog/"+url.PathEscape(postID), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateBlogPost publishes a new post. The create route wraps the
// post in an envelope, unlike every other blog response.
func (c *Client) CreateBlogPost(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	var wrapper struct {
		Post domain.BlogPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/blog", post, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Post, nil
}

// UpdateBlogPost replaces a post's content
func (c *Client) UpdateBlogPost(ctx context.Context, postID, content string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	path := "/blog/" + url.PathEscape(postID)
	body := map[string]any{"content": content}
	if err := c.do(ctx, http.MethodPut, path, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBlogPost removes a post by id
func (c *Client) DeleteBlogPost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/blog/"+url.PathEscape(postID), nil, nil)
}

// React upserts the caller's reaction on a post; the backend keeps at
// most one reaction per user and returns the authoritative post.
func (c *Client) React(ctx context.Context, postID string, typ domain.ReactionType) (*domain.BlogPost, error) {
	var post domain.BlogPost
	path := "/blog/" + url.PathEscape(postID) + "/react"
	body := map[string]any{"type": typ}
	if err := c.do(ctx, http.MethodPut, path, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// AddComment appends a comment and returns the updated post
func (c *Client) AddComment(ctx context.Context, postID, content string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	path := "/blog/" + url.PathEscape(postID) + "/comment"
	body := map[string]any{"content": content}
	if err := c.do(ctx, http.MethodPost, path, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateComment replaces one comment's content and returns the post
func (c *Client) UpdateComment(ctx context.Context, postID, commentID, content string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	path := "/blog/" + url.PathEscape(postID) + "/comment/" + url.PathEscape(commentID)
	body := map[string]any{"content": content}
	if err := c.do(ctx, http.MethodPut, path, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteComment removes one comment. Some backend revisions answer
// with the updated post, others with no content; when the body is
// empty the post is re-fetched so the caller always gets the
// authoritative copy.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) (*domain.BlogPost, error) {
	path := "/blog/" + url.PathEscape(postID) + "/comment/" + url.PathEscape(commentID)
	raw, err := c.doRaw(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return c.BlogPost(ctx, postID)
	}

	var post domain.BlogPost
	if err := decodeInto(raw, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
