package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"github.com/onielsteve2003/Modern-social-media/pkg/storage"
	"gorm.io/gorm"
)

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository  repositories.StoryRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	uploader         storage.Uploader
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository, uploader storage.Uploader) *StoryHandler {
	return &StoryHandler{
		storyRepository:  storyRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
		uploader:         uploader,
	}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.POST("/stories", h.CreateStory)
	g.GET("/stories/friends", h.FriendStories)
	g.GET("/stories/:id", h.GetStory)
	g.POST("/stories/:id/track", h.TrackStoryView)
	g.GET("/stories/:id/viewers", h.StoryViewers)
	g.GET("/stories/:id/view-count", h.StoryViewCount)
	g.POST("/stories/share", h.SharePostToStory)
}

// CreateStory creates a story from a multipart form. An attached image is
// uploaded; shared_post_id optionally links an existing post.
func (h *StoryHandler) CreateStory(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	description := c.FormValue("description")
	if description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Description is required.")
	}

	image := c.FormValue("image_url")
	if file, ferr := c.FormFile("image"); ferr == nil {
		image, err = uploadFormFile(c, h.uploader, "stories", file)
		if err != nil {
			return err
		}
	}

	story := &models.Story{
		UserID:      currentUserID,
		Description: description,
		Image:       image,
	}

	if raw := c.FormValue("shared_post_id"); raw != "" {
		postID, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid shared_post_id")
		}
		if _, perr := h.postRepository.GetPostByID(uint(postID)); perr != nil {
			if errors.Is(perr, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, perr.Error())
		}
		id := uint(postID)
		story.SharedPostID = &id
	}

	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusCreated, "Story created successfully.", story)
}

// FriendStories returns stories by the deduplicated union of the caller's
// following and followers.
func (h *StoryHandler) FriendStories(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	friendIDs, err := h.followRepository.GetFriendIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	stories, err := h.storyRepository.GetStoriesByUserIDs(friendIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved all stories from friends.", stories)
}

// GetStory returns a single story
func (h *StoryHandler) GetStory(c echo.Context) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}
	storyID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	story, err := h.storyRepository.GetStoryByID(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved story.", story)
}

// TrackStoryView records that the caller viewed the story. Repeated calls
// keep a single view record per viewer.
func (h *StoryHandler) TrackStoryView(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	storyID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	story, err := h.storyRepository.GetStoryByID(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.storyRepository.TrackView(storyID, currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully tracked story view.", story)
}

// StoryViewers lists who viewed the story
func (h *StoryHandler) StoryViewers(c echo.Context) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}
	storyID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	viewers, err := h.storyRepository.GetViewers(storyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved story viewers.", viewers)
}

// StoryViewCount returns how many distinct users viewed the story
func (h *StoryHandler) StoryViewCount(c echo.Context) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}
	storyID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	count, err := h.storyRepository.GetViewCount(storyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved story view count.", echo.Map{"view_count": count})
}

// SharePostToStory creates a story from an existing post, copying its
// description and image and keeping a link back via shared_post_id.
func (h *StoryHandler) SharePostToStory(c echo.Context) error {
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

	post, err := h.postRepository.GetPostByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	sharedID := post.ID
	story := &models.Story{
		UserID:       currentUserID,
		Description:  post.Description,
		Image:        post.Image,
		SharedPostID: &sharedID,
	}
	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusCreated, "Post shared to story successfully.", story)
}
