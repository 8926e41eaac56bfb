package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal-be/internal/middleware"
	"dreamjournal-be/internal/models"
	"dreamjournal-be/internal/service"
)

const dreamNotFound = "Dream not found"

type DreamController struct {
	dreamService service.DreamService
}

func NewDreamController(dreamService service.DreamService) *DreamController {
	return &DreamController{
		dreamService: dreamService,
	}
}

// List handles GET /dreams - all dreams for the authenticated user, newest
// first. An optional ?search= query narrows the result via the text index.
func (dc *DreamController) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	search := c.Query("search")

	dreams, err := dc.dreamService.List(userID, search)
	if err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	c.JSON(http.StatusOK, models.OKList(len(dreams), dreams))
}

// Get handles GET /dreams/:id
func (dc *DreamController) Get(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	dream, err := dc.dreamService.Get(userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	c.JSON(http.StatusOK, models.OK(dream))
}

// Create handles POST /dreams
func (dc *DreamController) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.CreateDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Please provide title and content"))
		return
	}

	dream, err := dc.dreamService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	c.JSON(http.StatusCreated, models.OKMessage("Dream created successfully", dream))
}

// Update handles PUT /dreams/:id
func (dc *DreamController) Update(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.UpdateDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}

	dream, err := dc.dreamService.Update(userID, c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	c.JSON(http.StatusOK, models.OKMessage("Dream updated successfully", dream))
}

// Delete handles DELETE /dreams/:id
func (dc *DreamController) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := dc.dreamService.Delete(userID, c.Param("id")); err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	c.JSON(http.StatusOK, models.OKMessage("Dream deleted successfully", gin.H{}))
}

// ToggleFavorite handles PATCH /dreams/:id/favorite
func (dc *DreamController) ToggleFavorite(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	dream, err := dc.dreamService.ToggleFavorite(userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, dreamNotFound)
		return
	}

	message := "Removed from favorites"
	if dream.IsFavorite {
		message = "Added to favorites"
	}

	c.JSON(http.StatusOK, models.OKMessage(message, dream))
}
