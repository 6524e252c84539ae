package handlers

import (
	"net/http"
	"strings"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/mapper"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), userID, taskID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to list comments", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCommentRequired, lang),
		)
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCommentRequired, lang),
		)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, taskID, content)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create comment", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, lang, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, taskID, commentID); err != nil {
		respondDomainError(c, lang, err, "failed to delete comment",
			zap.Uint64("task_id", taskID), zap.Uint64("comment_id", commentID))
		return
	}

	c.Status(http.StatusNoContent)
}
