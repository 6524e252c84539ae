package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondDomainError translates service errors into the JSON error envelope.
// Validation failures carry their own field and message key; anything
// unrecognized is logged and surfaced as a 500.
func respondDomainError(c *gin.Context, lang string, err error, logMsg string, logFields ...zap.Field) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldError(http.StatusBadRequest, validationErr.MsgKey, validationErr.Field, lang),
		)
	case errors.Is(err, domain.ErrBoardNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
	default:
		zap.L().Error(logMsg, append(logFields, zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
	}
}

func parseIDParam(c *gin.Context, lang, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}
