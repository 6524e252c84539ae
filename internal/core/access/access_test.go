package access_test

import (
	"testing"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"

	"github.com/stretchr/testify/require"
)

func TestAllowed_BoardRead(t *testing.T) {
	cases := []struct {
		name string
		rel  access.Relationship
		want bool
	}{
		{"owner", access.Relationship{Owner: true}, true},
		{"member", access.Relationship{Member: true}, true},
		{"assignee or reviewer on a task", access.Relationship{TaskParticipant: true}, true},
		{"outsider", access.Relationship{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, access.Allowed(access.EntityBoard, access.ActionRead, tc.rel))
		})
	}
}

func TestAllowed_BoardUpdateAndDelete(t *testing.T) {
	owner := access.Relationship{Owner: true}
	member := access.Relationship{Member: true}
	participant := access.Relationship{TaskParticipant: true}

	require.True(t, access.Allowed(access.EntityBoard, access.ActionUpdate, owner))
	require.True(t, access.Allowed(access.EntityBoard, access.ActionUpdate, member))
	require.False(t, access.Allowed(access.EntityBoard, access.ActionUpdate, participant))

	require.True(t, access.Allowed(access.EntityBoard, access.ActionDelete, owner))
	require.False(t, access.Allowed(access.EntityBoard, access.ActionDelete, member))
	require.False(t, access.Allowed(access.EntityBoard, access.ActionDelete, participant))
}

func TestAllowed_TaskReadIsOpen(t *testing.T) {
	require.True(t, access.Allowed(access.EntityTask, access.ActionRead, access.Relationship{}))
}

func TestAllowed_TaskMutationsRequireBoardRole(t *testing.T) {
	for _, action := range []access.Action{access.ActionCreate, access.ActionUpdate, access.ActionDelete} {
		require.True(t, access.Allowed(access.EntityTask, action, access.Relationship{Owner: true}))
		require.True(t, access.Allowed(access.EntityTask, action, access.Relationship{Member: true}))
		require.False(t, access.Allowed(access.EntityTask, action, access.Relationship{TaskParticipant: true}))
		require.False(t, access.Allowed(access.EntityTask, action, access.Relationship{}))
	}
}

func TestAllowed_CommentDeleteIsAuthorOnly(t *testing.T) {
	require.True(t, access.Allowed(access.EntityComment, access.ActionDelete, access.Relationship{Author: true}))
	// Board owner without authorship is denied.
	require.False(t, access.Allowed(access.EntityComment, access.ActionDelete, access.Relationship{Owner: true, Member: true}))
}

func TestAllowed_CommentListCreate(t *testing.T) {
	require.True(t, access.Allowed(access.EntityComment, access.ActionCreate, access.Relationship{Member: true}))
	require.True(t, access.Allowed(access.EntityComment, access.ActionRead, access.Relationship{Owner: true}))
	require.False(t, access.Allowed(access.EntityComment, access.ActionCreate, access.Relationship{TaskParticipant: true}))
}

func TestAllowed_UnknownPairDenies(t *testing.T) {
	require.False(t, access.Allowed(access.Entity("unknown"), access.ActionRead, access.Relationship{Owner: true}))
	require.False(t, access.Allowed(access.EntityComment, access.Action("archive"), access.Relationship{Author: true}))
}
