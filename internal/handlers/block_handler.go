package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"gorm.io/gorm"
)

// BlockHandler handles block toggle HTTP requests
type BlockHandler struct {
	blockRepository repositories.BlockRepository
	userRepository  repositories.UserRepository
}

// NewBlockHandler creates a new BlockHandler
func NewBlockHandler(blockRepo repositories.BlockRepository, userRepo repositories.UserRepository) *BlockHandler {
	return &BlockHandler{
		blockRepository: blockRepo,
		userRepository:  userRepo,
	}
}

// RegisterBlockRoutes registers block-related routes
func (h *BlockHandler) RegisterBlockRoutes(g *echo.Group) {
	g.POST("/block/:userId", h.ToggleBlock)
}

// ToggleBlock blocks the target user if not blocked, unblocks otherwise
func (h *BlockHandler) ToggleBlock(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	targetID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	target, err := h.userRepository.GetUserByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User to block/unblock not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	blocked, err := h.blockRepository.ToggleBlock(currentUserID, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if blocked {
		return respond(c, http.StatusCreated, "User "+target.Username+" has been blocked.", nil)
	}
	return respond(c, http.StatusOK, "User "+target.Username+" has been unblocked.", nil)
}
