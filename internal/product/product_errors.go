package product

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var (
	ErrProductNotFound    = apperror.New(apperror.CodeNotFound, "product not found", http.StatusNotFound)
	ErrCatalogUnavailable = apperror.New(apperror.CodeUpstreamError, "catalog service unavailable", http.StatusBadGateway)
)
