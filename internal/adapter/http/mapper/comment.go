package mapper

import (
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	author := ""
	if comment.Author != nil {
		author = comment.Author.FullName()
	}
	return dto.CommentItem{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		Author:    author,
		Content:   comment.Content,
	}
}
