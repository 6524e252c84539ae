package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/mapper"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/validation"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoneRecentlyHeader carries the count of the caller's tasks completed within
// the trailing window on the assigned-to-me and reviewing listings.
const DoneRecentlyHeader = "X-Tasks-Done-Recently"

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create task", zap.Uint64("board_id", input.BoardID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		if errors.Is(err, validation.ErrBoardImmutable) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateFieldError(http.StatusBadRequest, apierrors.MsgBoardImmutable, "board", lang),
			)
			return
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		respondDomainError(c, lang, err, "failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListBoardTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	boardID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListBoardTasks(c.Request.Context(), userID, boardID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to list board tasks", zap.Uint64("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ListAssignedTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	tasks, doneRecently, err := h.taskService.ListAssigned(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to list assigned tasks", zap.Uint64("user_id", userID))
		return
	}

	c.Header(DoneRecentlyHeader, strconv.Itoa(doneRecently))
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ListReviewingTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	tasks, doneRecently, err := h.taskService.ListReviewing(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to list reviewing tasks", zap.Uint64("user_id", userID))
		return
	}

	c.Header(DoneRecentlyHeader, strconv.Itoa(doneRecently))
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}
