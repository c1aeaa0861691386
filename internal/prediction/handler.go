package prediction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/history
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	label := c.Query("label")

	limit, err := intQuery(c, "limit", defaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be an integer"})
		return
	}

	predictions, page, err := h.service.History(c.Request.Context(), label, limit, skip)
	if err != nil {
		if errors.Is(err, ErrInvalidLabel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	if predictions == nil {
		predictions = []*Prediction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       predictions,
		"pagination": page,
	})
}

// --------------------------------------------------
// GET /api/history/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prediction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

// --------------------------------------------------
// DELETE /api/history/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prediction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "prediction deleted",
	})
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
