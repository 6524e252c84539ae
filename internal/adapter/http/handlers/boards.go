package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/mapper"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/validation"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	boards, err := h.boardService.ListBoards(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to list boards", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardListItems(boards))
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateBoardInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgBoardNameRequired, lang),
		)
		return
	}

	detail, err := h.boardService.CreateBoard(c.Request.Context(), userID, input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create board", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBoardDetail(detail))
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	boardID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	detail, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to get board", zap.Uint64("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardDetail(detail))
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	boardID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	raw, req, ok := bindBoardUpdate(c, lang)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateBoardInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	detail, err := h.boardService.UpdateBoard(c.Request.Context(), userID, boardID, input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to update board", zap.Uint64("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardUpdateResponse(detail))
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	boardID, ok := parseIDParam(c, lang, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		respondDomainError(c, lang, err, "failed to delete board", zap.Uint64("board_id", boardID))
		return
	}

	c.Status(http.StatusNoContent)
}

// bindBoardUpdate decodes the body twice: once into the typed request and
// once into a raw field map, so absent and null fields can be told apart.
func bindBoardUpdate(c *gin.Context, lang string) (map[string]json.RawMessage, dto.UpdateBoardRequest, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return nil, dto.UpdateBoardRequest{}, false
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return nil, dto.UpdateBoardRequest{}, false
	}

	return raw, req, true
}
