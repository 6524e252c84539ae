package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

var ErrInvalidBoardPayload = errors.New("invalid board payload")

func BuildCreateBoardInput(req dto.CreateBoardRequest) (domain.CreateBoardInput, error) {
	name := ""
	switch {
	case req.Title != nil:
		name = strings.TrimSpace(*req.Title)
	case req.Name != nil:
		name = strings.TrimSpace(*req.Name)
	}
	if name == "" {
		return domain.CreateBoardInput{}, ErrInvalidBoardPayload
	}

	return domain.CreateBoardInput{
		Name:      name,
		MemberIDs: req.Members,
	}, nil
}

func BuildUpdateBoardInput(req dto.UpdateBoardRequest, raw map[string]json.RawMessage) (domain.UpdateBoardInput, error) {
	titleSet := hasJSONField(raw, "title")
	membersSet := hasJSONField(raw, "members")
	if !titleSet && !membersSet {
		return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
	}

	var name *string
	if titleSet {
		if req.Title == nil {
			return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
		}
		name = &value
	}

	var memberIDs []uint64
	if membersSet {
		if req.Members == nil || isJSONNull(raw["members"]) {
			return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
		}
		memberIDs = *req.Members
	}

	return domain.UpdateBoardInput{
		Name:       name,
		MemberIDs:  memberIDs,
		MembersSet: membersSet,
	}, nil
}
