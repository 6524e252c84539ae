package domain

import "time"

type Comment struct {
	ID        uint64
	TaskID    uint64
	AuthorID  uint64
	Author    *User
	Content   string
	CreatedAt time.Time
}
