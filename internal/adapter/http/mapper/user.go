package mapper

import (
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

func ToUserMini(user domain.User) dto.UserMini {
	return dto.UserMini{
		ID:       user.ID,
		Email:    user.Email,
		Fullname: user.FullName(),
	}
}

func ToUserMinis(users []domain.User) []dto.UserMini {
	minis := make([]dto.UserMini, 0, len(users))
	for _, user := range users {
		minis = append(minis, ToUserMini(user))
	}
	return minis
}

func toOptionalUserMini(user *domain.User) *dto.UserMini {
	if user == nil {
		return nil
	}
	mini := ToUserMini(*user)
	return &mini
}

func ToAuthResponse(result domain.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:    result.Token,
		UserID:   result.User.ID,
		Email:    result.User.Email,
		Fullname: result.User.FullName(),
	}
}
