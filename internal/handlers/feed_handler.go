package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"gorm.io/gorm"
)

// FeedHandler composes the follow graph and the content stores to answer
// "what should this user see" queries.
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/following", h.FollowingPosts)
	g.GET("/posts/following-and-followers", h.FollowingAndFollowersPosts)
	g.POST("/posts/share-post-to-timeline", h.SharePostToTimeline)
}

// FollowingPosts returns posts by the users the caller follows
func (h *FeedHandler) FollowingPosts(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	followingIDs, err := h.followRepository.GetFollowingIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.GetPostsByUserIDs(followingIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved posts from users you are following.", posts)
}

// FollowingAndFollowersPosts returns posts by the deduplicated union of the
// caller's following and followers. A mutual follow contributes once.
func (h *FeedHandler) FollowingAndFollowersPosts(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	friendIDs, err := h.followRepository.GetFriendIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.GetPostsByUserIDs(friendIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved posts from users you are following and those following you.", posts)
}

// SharePostToTimeline copies an existing post's content into a new post
// owned by the caller. The copy keeps no link to the source.
func (h *FeedHandler) SharePostToTimeline(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req models.SharePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.PostID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Post ID is required.")
	}

	source, err := h.postRepository.GetPostByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	reshared := &models.Post{
		UserID:      currentUserID,
		Title:       source.Title,
		Description: source.Description,
		Image:       source.Image,
	}
	if err := h.postRepository.CreatePost(reshared); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusCreated, "Post reshared to timeline successfully.", reshared)
}
