package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/app/token"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *token.Manager
}

func NewAuthService(userRepository ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{userRepository: userRepository, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	if input.Password != input.RepeatedPassword {
		return domain.AuthResult{}, domain.NewValidationError("password", apierrors.MsgPasswordMismatch)
	}

	email := strings.TrimSpace(input.Email)
	taken, err := s.userRepository.EmailExists(ctx, email)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if taken {
		return domain.AuthResult{}, domain.NewValidationError("email", apierrors.MsgEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResult{}, err
	}

	firstName, lastName := domain.SplitFullName(input.Fullname)
	user, err := s.userRepository.Create(ctx, domain.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.AuthResult{}, err
	}

	return s.authResult(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResult{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *AuthService) authResult(user domain.User) (domain.AuthResult, error) {
	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: tok, User: user}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
