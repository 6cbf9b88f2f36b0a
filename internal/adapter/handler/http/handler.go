package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrAccountNotVerified: http.StatusForbidden,
	domain.ErrNotPrivileged:      http.StatusForbidden,
	domain.ErrInsufficientCredit: http.StatusPaymentRequired,
	domain.ErrInstallmentPaid:    http.StatusUnprocessableEntity,
	domain.ErrNonPositiveAmount:  http.StatusUnprocessableEntity,
	domain.ErrEmptyOrder:         http.StatusUnprocessableEntity,
	domain.ErrPrecondition:       http.StatusUnprocessableEntity,

	domain.ErrInvalidTransition:      http.StatusConflict,
	domain.ErrConcurrentModification: http.StatusConflict,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusCode(err error) (int, bool) {
	if code, ok := errorStatusMap[err]; ok {
		return code, true
	}
	// Typed errors (InvalidTransitionError) match their sentinel via Is.
	for target, code := range errorStatusMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	code, ok := statusCode(err)
	if !ok {
		code = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(code, gin.H{"error": err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
