package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/handlers"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBoardRouter(handler *handlers.BoardHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), middleware.RequireAuth(testTokens))
	api.GET("/boards", handler.ListBoards)
	api.POST("/boards", handler.CreateBoard)
	api.GET("/boards/:id", handler.GetBoard)
	api.PATCH("/boards/:id", handler.UpdateBoard)
	api.DELETE("/boards/:id", handler.DeleteBoard)
	return router
}

func TestBoardHandler_ListBoards_Success(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("ListBoards", mock.Anything, testUserID).Return(
		[]domain.BoardSummary{
			{
				Board:              domain.Board{ID: 3, Name: "Launch", OwnerID: testUserID},
				MemberCount:        2,
				TicketCount:        5,
				TasksToDoCount:     1,
				TasksHighPrioCount: 2,
			},
		},
		nil,
	).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/boards", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.BoardListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(3), got[0].ID)
	require.Equal(t, "Launch", got[0].Title)
	require.Equal(t, testUserID, got[0].OwnerID)
	require.Equal(t, 2, got[0].MemberCount)
	require.Equal(t, 5, got[0].TicketCount)
	require.Equal(t, 1, got[0].TasksToDoCount)
	require.Equal(t, 2, got[0].TasksHighPrioCount)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_ListBoards_MissingToken(t *testing.T) {
	serviceMock := new(boardServiceMock)
	handler := handlers.NewBoardHandler(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "ListBoards", mock.Anything, mock.Anything)
}

func TestBoardHandler_CreateBoard_Success(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("CreateBoard", mock.Anything, testUserID, domain.CreateBoardInput{
		Name:      "Launch",
		MemberIDs: []uint64{8, 9},
	}).Return(domain.BoardDetail{
		Board: domain.Board{ID: 3, Name: "Launch", OwnerID: testUserID},
		Owner: domain.User{ID: testUserID, Email: "owner@example.com", FirstName: "Olive"},
		Members: []domain.User{
			{ID: 8, Email: "m8@example.com", FirstName: "Max"},
			{ID: 9, Email: "m9@example.com", FirstName: "Mia"},
		},
	}, nil).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	body := `{"title":"Launch","members":[8,9]}`
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/boards", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.BoardDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(3), got.ID)
	require.Equal(t, "Launch", got.Title)
	require.Len(t, got.Members, 2)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_CreateBoard_LegacyNameKey(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("CreateBoard", mock.Anything, testUserID, domain.CreateBoardInput{Name: "Launch"}).
		Return(domain.BoardDetail{Board: domain.Board{ID: 3, Name: "Launch", OwnerID: testUserID}}, nil).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	body := `{"name":"Launch"}`
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/boards", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_CreateBoard_MissingName(t *testing.T) {
	serviceMock := new(boardServiceMock)
	handler := handlers.NewBoardHandler(serviceMock)

	body := `{"members":[8]}`
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/boards", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Board name is required", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateBoard", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoardHandler_GetBoard_NotFound(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("GetBoard", mock.Anything, testUserID, uint64(42)).
		Return(domain.BoardDetail{}, domain.ErrBoardNotFound).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/boards/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Board not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_GetBoard_InvalidID(t *testing.T) {
	serviceMock := new(boardServiceMock)
	handler := handlers.NewBoardHandler(serviceMock)

	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/boards/abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "GetBoard", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoardHandler_UpdateBoard_Success(t *testing.T) {
	newName := "Launch v2"
	serviceMock := new(boardServiceMock)
	serviceMock.On("UpdateBoard", mock.Anything, testUserID, uint64(3), domain.UpdateBoardInput{
		Name:       &newName,
		MemberIDs:  []uint64{8},
		MembersSet: true,
	}).Return(domain.BoardDetail{
		Board:   domain.Board{ID: 3, Name: newName, OwnerID: testUserID},
		Owner:   domain.User{ID: testUserID, Email: "owner@example.com", FirstName: "Olive"},
		Members: []domain.User{{ID: 8, Email: "m8@example.com", FirstName: "Max"}},
	}, nil).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	body := `{"title":"Launch v2","members":[8]}`
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodPatch, "/api/boards/3", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BoardUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Launch v2", got.Title)
	require.Equal(t, testUserID, got.OwnerData.ID)
	require.Len(t, got.MembersData, 1)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_UpdateBoard_Forbidden(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("UpdateBoard", mock.Anything, testUserID, uint64(3), mock.Anything).
		Return(domain.BoardDetail{}, domain.ErrForbidden).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	body := `{"title":"Hijacked"}`
	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodPatch, "/api/boards/3", strings.NewReader(body)))

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "You do not have permission to do this", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_DeleteBoard_Success(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("DeleteBoard", mock.Anything, testUserID, uint64(3)).Return(nil).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/boards/3", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_DeleteBoard_Forbidden(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("DeleteBoard", mock.Anything, testUserID, uint64(3)).Return(domain.ErrForbidden).Once()
	handler := handlers.NewBoardHandler(serviceMock)

	rec := httptest.NewRecorder()
	newBoardRouter(handler).ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/boards/3", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	serviceMock.AssertExpectations(t)
}
