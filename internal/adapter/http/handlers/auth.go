package handlers

import (
	"net/http"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/mapper"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Fullname:         req.Fullname,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
	})
	if err != nil {
		respondDomainError(c, lang, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAuthResponse(result))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, lang, err, "failed to log user in")
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuthResponse(result))
}
