// Package access is the authorization decision table for boards, tasks and
// comments. It is pure: callers gather the relationship facts, the table
// answers permit/deny. Existence checks (404 vs 403) are the caller's job and
// always happen before consulting the table.
package access

type Entity string

const (
	EntityBoard   Entity = "board"
	EntityTask    Entity = "task"
	EntityComment Entity = "comment"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Relationship describes how a user relates to the board a target entity
// belongs to. Author only applies to comments.
type Relationship struct {
	Owner           bool
	Member          bool
	TaskParticipant bool // assignee or reviewer of any task on the board
	Author          bool
}

func ownerOrMember(r Relationship) bool { return r.Owner || r.Member }

func anyAuthenticated(Relationship) bool { return true }

var rules = map[Entity]map[Action]func(Relationship) bool{
	EntityBoard: {
		ActionRead: func(r Relationship) bool {
			return r.Owner || r.Member || r.TaskParticipant
		},
		ActionCreate: anyAuthenticated,
		ActionUpdate: ownerOrMember,
		ActionDelete: func(r Relationship) bool { return r.Owner },
	},
	EntityTask: {
		// Task detail is deliberately open to every authenticated user.
		ActionRead:   anyAuthenticated,
		ActionCreate: ownerOrMember,
		ActionUpdate: ownerOrMember,
		ActionDelete: ownerOrMember,
	},
	EntityComment: {
		ActionRead:   ownerOrMember,
		ActionCreate: ownerOrMember,
		// Authorship trumps board role: even the board owner may not delete
		// someone else's comment.
		ActionDelete: func(r Relationship) bool { return r.Author },
	},
}

// Allowed evaluates the (entity, action) predicate against rel. Unknown
// pairs deny.
func Allowed(entity Entity, action Action, rel Relationship) bool {
	actions, ok := rules[entity]
	if !ok {
		return false
	}
	predicate, ok := actions[action]
	if !ok {
		return false
	}
	return predicate(rel)
}
