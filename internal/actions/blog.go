package actions

import (
	"context"
	"strings"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/domain"
)

// AddBlogPost publishes a post authored by the signed-in user. Author
// fields come from the session; id, timestamp and the empty reaction
// and comment lists come back from the server.
func (c *Coordinator) AddBlogPost(ctx context.Context, content string) error {
	sess, ok := c.sessions.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	post := &domain.BlogPost{
		AuthorID:       sess.User.UserID(),
		AuthorName:     sess.User.DisplayName(),
		AuthorRole:     sess.User.UserRole(),
		AuthorPhotoURL: sess.User.AvatarURL(),
		Content:        content,
	}

	saved, err := c.client.CreateBlogPost(ctx, post)
	if err != nil {
		c.notifier.Failure("Failed to create blog post: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*saved)
	c.notifier.Success("Blog post created successfully!")
	return nil
}

// UpdateBlogPost replaces a post's content
func (c *Coordinator) UpdateBlogPost(ctx context.Context, postID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	updated, err := c.client.UpdateBlogPost(ctx, postID, content)
	if err != nil {
		c.notifier.Failure("Failed to update blog post: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*updated)
	c.notifier.Success("Blog post updated successfully!")
	return nil
}

// DeleteBlogPost removes a post and drops it from the feed cache
func (c *Coordinator) DeleteBlogPost(ctx context.Context, postID string) error {
	if err := c.client.DeleteBlogPost(ctx, postID); err != nil {
		c.notifier.Failure("Failed to delete blog post: " + api.ErrorMessage(err))
		return err
	}
	c.cache.RemovePost(postID)
	c.notifier.Success("Blog post deleted successfully!")
	return nil
}

// React sends the latest chosen reaction; the server upserts it and the
// returned post replaces the cached one wholesale, so reaction counts
// are never computed locally.
func (c *Coordinator) React(ctx context.Context, postID string, typ domain.ReactionType) error {
	if _, ok := c.sessions.Current(); !ok {
		return ErrNotAuthenticated
	}
	if !typ.Valid() {
		return ErrInvalidReaction
	}

	updated, err := c.client.React(ctx, postID, typ)
	if err != nil {
		c.notifier.Failure("Failed to react to post: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*updated)
	return nil
}

// AddComment appends a comment to a post
func (c *Coordinator) AddComment(ctx context.Context, postID, content string) error {
	if _, ok := c.sessions.Current(); !ok {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	updated, err := c.client.AddComment(ctx, postID, content)
	if err != nil {
		c.notifier.Failure("Failed to add comment: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*updated)
	c.notifier.Success("Comment added successfully!")
	return nil
}

// UpdateComment replaces one comment's content
func (c *Coordinator) UpdateComment(ctx context.Context, postID, commentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	updated, err := c.client.UpdateComment(ctx, postID, commentID, content)
	if err != nil {
		c.notifier.Failure("Failed to update comment: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*updated)
	c.notifier.Success("Comment updated successfully!")
	return nil
}

// DeleteComment removes one comment, matched by id; other posts and
// comments are untouched.
func (c *Coordinator) DeleteComment(ctx context.Context, postID, commentID string) error {
	updated, err := c.client.DeleteComment(ctx, postID, commentID)
	if err != nil {
		c.notifier.Failure("Failed to delete comment: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplacePost(*updated)
	return nil
}
