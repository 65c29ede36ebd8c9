package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/authz"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"github.com/onielsteve2003/Modern-social-media/pkg/storage"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	uploader       storage.Uploader
}

// NewPostHandler creates a new PostHandler. uploader may be nil, in which
// case image uploads are rejected and only image URLs are accepted.
func NewPostHandler(postRepo repositories.PostRepository, uploader storage.Uploader) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploader:       uploader,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts/add", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// resolveImage stores an uploaded file if one is attached, otherwise falls
// back to the image_url form field.
func (h *PostHandler) resolveImage(c echo.Context, prefix string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached.
		return c.FormValue("image_url"), nil
	}
	return uploadFormFile(c, h.uploader, prefix, file)
}

func uploadFormFile(c echo.Context, uploader storage.Uploader, prefix string, file *multipart.FileHeader) (string, error) {
	if uploader == nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Image uploads are not configured")
	}
	src, err := file.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Failed to read uploaded image")
	}
	defer src.Close()

	url, err := uploader.UploadImage(c.Request().Context(), prefix, file.Filename, src, file.Size)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return url, nil
}

// CreatePost creates a post from a multipart form. At least one of title,
// description or image must be present.
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	image, err := h.resolveImage(c, "posts")
	if err != nil {
		return err
	}

	post := &models.Post{
		UserID:      currentUserID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Image:       image,
	}
	if !post.HasContent() {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one of title, description, or image must be provided.")
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusCreated, "Post created successfully.", post)
}

// GetPosts returns every post in the app
func (h *PostHandler) GetPosts(c echo.Context) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}

	posts, err := h.postRepository.GetPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved all posts.", posts)
}

// GetPost returns a single post owned by the caller
func (h *PostHandler) GetPost(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
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

	if !authz.PostAuthority(post).Allows(currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to view this post.")
	}

	return respond(c, http.StatusOK, "Successfully retrieved post.", post)
}

// UpdatePost updates the caller's own post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !authz.PostAuthority(post).Allows(currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to edit this post.")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if !post.HasContent() {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one of title, description, or image must be provided.")
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Post updated successfully.", post)
}

// DeletePost deletes the caller's own post
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
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

	if !authz.PostAuthority(post).Allows(currentUserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to delete this post.")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Post deleted successfully.", nil)
}
