package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"gorm.io/gorm"
)

// FavoriteHandler handles favorite HTTP requests
type FavoriteHandler struct {
	favoriteRepository repositories.FavoriteRepository
	postRepository     repositories.PostRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository, postRepo repositories.PostRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepository: favoriteRepo,
		postRepository:     postRepo,
	}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/posts/:id/favorite", h.ToggleFavorite)
	g.GET("/posts/favorites", h.ListFavorites)
}

// ToggleFavorite favorites the post, or unfavorites it if already favorited
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	favorited, err := h.favoriteRepository.ToggleFavorite(currentUserID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if favorited {
		return respond(c, http.StatusCreated, "Post added to favorites.", nil)
	}
	return respond(c, http.StatusOK, "Post removed from favorites.", nil)
}

// ListFavorites lists the caller's favorited posts
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteRepository.GetFavoritesByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, "Successfully retrieved all favorite posts.", favorites)
}
