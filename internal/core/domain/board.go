package domain

type Board struct {
	ID      uint64
	Name    string
	OwnerID uint64
}

// BoardSummary is a board list entry with the aggregate counts computed by
// the store. TasksHighPrioCount counts tasks whose priority is literally
// "high"; priority itself stays free-form.
type BoardSummary struct {
	Board
	MemberCount        int
	TicketCount        int
	TasksToDoCount     int
	TasksHighPrioCount int
}

// BoardDetail carries a board together with its owner, members and tasks.
// The owner is never part of Members; owner membership is implicit.
type BoardDetail struct {
	Board
	Owner   User
	Members []User
	Tasks   []Task
}

type CreateBoardInput struct {
	Name      string
	MemberIDs []uint64
}

type UpdateBoardInput struct {
	Name       *string
	MemberIDs  []uint64
	MembersSet bool
}
