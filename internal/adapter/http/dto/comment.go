package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	CreatedAt string `json:"created_at"`
	Author    string `json:"author"`
	Content   string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
