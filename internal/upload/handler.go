package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirankarlapati/fruitanalyser/internal/classifier"
	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/upload
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if header.Size > MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}

	p, err := h.service.Process(
		c.Request.Context(),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		switch {
		case errors.Is(err, classifier.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "ML service is unavailable. Please try again later.",
			})
		case errors.Is(err, prediction.ErrInvalidLabel),
			errors.Is(err, prediction.ErrInvalidScore):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "ML service returned an invalid classification",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}
