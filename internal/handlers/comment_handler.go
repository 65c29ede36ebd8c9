package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/authz"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers authenticated comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comment", h.CreateComment)
	g.PATCH("/comments/:id/edit", h.EditComment)
	g.DELETE("/comments/:id/delete", h.DeleteComment)
	g.DELETE("/posts/:id/comments/:commentId/delete", h.DeleteAnyComment)
}

// RegisterPublicCommentRoutes registers the unauthenticated comment listing
func (h *CommentHandler) RegisterPublicCommentRoutes(e *echo.Echo) {
	e.GET("/posts/:id/comments", h.GetPostComments)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  currentUserID,
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusCreated, "Comment created successfully.", comment)
}

// EditComment updates a comment; only the author may edit
func (h *CommentHandler) EditComment(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !authz.CommentEditAuthority(comment).Allows(currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to edit this comment.")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Comment updated successfully.", comment)
}

// DeleteComment removes the caller's own comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// This route serves the author's half of the deletion authority.
	allowed := authz.CommentDeleteAuthority(comment, &comment.Post)
	if !allowed.Allows(currentUserID) || !authz.IsOwner(comment.UserID, currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to delete this comment.")
	}

	if err := h.commentRepository.DeleteComment(commentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Comment deleted successfully.", nil)
}

// DeleteAnyComment lets a post's owner moderate away any comment on it
func (h *CommentHandler) DeleteAnyComment(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil || comment.PostID != postID {
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// This route serves the post owner's half of the deletion authority.
	// Authors use their own delete endpoint.
	allowed := authz.CommentDeleteAuthority(comment, post)
	if !allowed.Allows(currentUserID) || !authz.IsOwner(post.UserID, currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to delete this comment.")
	}

	if err := h.commentRepository.DeleteComment(commentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Comment deleted successfully.", nil)
}

// GetPostComments lists a post's comments. A missing post yields an empty
// list, not a 404.
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved all post comments.", comments)
}
