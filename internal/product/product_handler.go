package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-venusa-api/internal/pkg/apperror"
	"go-venusa-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, list, nil)
}

func (h *Handler) Detail(c *gin.Context) {
	p, err := h.service.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, p, nil)
}
