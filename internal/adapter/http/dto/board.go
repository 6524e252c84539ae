package dto

type BoardListItem struct {
	ID                 uint64 `json:"id"`
	Title              string `json:"title"`
	OwnerID            uint64 `json:"owner_id"`
	MemberCount        int    `json:"member_count"`
	TicketCount        int    `json:"ticket_count"`
	TasksToDoCount     int    `json:"tasks_to_do_count"`
	TasksHighPrioCount int    `json:"tasks_high_prio_count"`
}

type BoardDetail struct {
	ID      uint64          `json:"id"`
	Title   string          `json:"title"`
	OwnerID uint64          `json:"owner_id"`
	Members []UserMini      `json:"members"`
	Tasks   []BoardTaskItem `json:"tasks"`
}

// BoardTaskItem is a task as embedded in a board detail payload: no board
// reference (it is implicit) but with the comment count.
type BoardTaskItem struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Assignee      *UserMini `json:"assignee"`
	Reviewer      *UserMini `json:"reviewer"`
	DueDate       *string   `json:"due_date"`
	CommentsCount int       `json:"comments_count"`
}

type BoardUpdateResponse struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	OwnerData   UserMini   `json:"owner_data"`
	MembersData []UserMini `json:"members_data"`
}

// CreateBoardRequest accepts the board name under either key; older clients
// send "name", newer ones "title".
type CreateBoardRequest struct {
	Title   *string  `json:"title"`
	Name    *string  `json:"name"`
	Members []uint64 `json:"members"`
}

type UpdateBoardRequest struct {
	Title   *string   `json:"title"`
	Members *[]uint64 `json:"members"`
}
