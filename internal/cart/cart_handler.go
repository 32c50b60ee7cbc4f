package cart

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

// GET /carts
func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), profileID(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// GET /carts/count
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), profileID(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count}, nil)
}

// POST /carts/items
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	res, err := h.service.AddItem(c.Request.Context(), profileID(c), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// PUT /carts/items/:slug
func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	res, err := h.service.UpdateQty(c.Request.Context(), profileID(c), c.Param("slug"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /carts/items/:slug/increment
func (h *Handler) Increment(c *gin.Context) {
	res, err := h.service.Increment(c.Request.Context(), profileID(c), c.Param("slug"), c.Query("size"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /carts/items/:slug/decrement
func (h *Handler) Decrement(c *gin.Context) {
	res, err := h.service.Decrement(c.Request.Context(), profileID(c), c.Param("slug"), c.Query("size"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /carts/items/:slug?size=M
func (h *Handler) DeleteItem(c *gin.Context) {
	res, err := h.service.DeleteItem(c.Request.Context(), profileID(c), c.Param("slug"), c.Query("size"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /carts
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), profileID(c)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "cart cleared"}, nil)
}
