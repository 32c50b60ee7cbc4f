package wishlist

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
	"go-venusa-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

func profileID(c *gin.Context) string {
	return c.GetString("profile_id")
}

// GET /wishlists/items
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), profileID(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /wishlists/items/:slug
func (h *Handler) Add(c *gin.Context) {
	res, err := h.service.Add(c.Request.Context(), profileID(c), c.Param("slug"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// POST /wishlists/items/:slug/toggle
func (h *Handler) Toggle(c *gin.Context) {
	res, err := h.service.Toggle(c.Request.Context(), profileID(c), c.Param("slug"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /wishlists/items/:slug
func (h *Handler) Remove(c *gin.Context) {
	res, err := h.service.Remove(c.Request.Context(), profileID(c), c.Param("slug"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /wishlists
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), profileID(c)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "wishlist cleared"}, nil)
}
