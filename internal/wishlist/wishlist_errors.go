package wishlist

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var ErrInvalidSlug = apperror.New(
	apperror.CodeInvalidInput,
	"invalid product slug",
	http.StatusBadRequest,
)
