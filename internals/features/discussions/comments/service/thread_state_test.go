// file: internals/features/discussions/comments/service/thread_state_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "studenthub_backend/internals/features/discussions/comments/model"
)

func TestThreadState_CollapseSurvivesRebuild(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := NewThreadState()

	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(time.Minute)),
		mkComment(3, ptr(cid(2)), base.Add(2*time.Minute)),
	}

	st.SetCollapsed(cid(2), true)

	view := st.HideCollapsed(BuildThread(rows))
	require.Len(t, view, 1)
	require.Len(t, view[0].Children, 1)
	assert.Empty(t, view[0].Children[0].Children, "collapsed subtree must be hidden")

	// a new reply lands elsewhere and the thread is rebuilt from scratch
	rows = append(rows, mkComment(4, ptr(cid(1)), base.Add(3*time.Minute)))
	view = st.HideCollapsed(BuildThread(rows))
	require.Len(t, view, 1)
	require.Len(t, view[0].Children, 2)
	assert.Empty(t, view[0].Children[0].Children, "collapse is keyed by id, not position")
}

func TestThreadState_CollapseDefaultsToFalse(t *testing.T) {
	st := NewThreadState()
	assert.False(t, st.IsCollapsed(cid(1)))

	st.SetCollapsed(cid(1), true)
	assert.True(t, st.IsCollapsed(cid(1)))

	st.SetCollapsed(cid(1), false)
	assert.False(t, st.IsCollapsed(cid(1)))
}

func TestThreadState_HideCollapsedLeavesSourceIntact(t *testing.T) {
	base := time.Now().UTC()
	st := NewThreadState()

	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(time.Second)),
	}
	forest := BuildThread(rows)
	st.SetCollapsed(cid(1), true)

	view := st.HideCollapsed(forest)
	require.Len(t, view, 1)
	assert.Empty(t, view[0].Children)

	// source forest keeps its children, so expanding needs no re-fetch
	require.Len(t, forest, 1)
	assert.Len(t, forest[0].Children, 1)
}

func TestThreadState_VisibleCountSkipsCollapsedSubtrees(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := NewThreadState()

	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(time.Minute)),
		mkComment(3, ptr(cid(1)), base.Add(2*time.Minute)),
		mkComment(4, ptr(cid(2)), base.Add(3*time.Minute)),
	}
	forest := BuildThread(rows)

	assert.Equal(t, 4, st.VisibleCount(forest))

	st.SetCollapsed(cid(2), true)
	assert.Equal(t, 3, st.VisibleCount(forest), "collapsed node stays visible, its subtree does not")

	st.SetCollapsed(cid(1), true)
	assert.Equal(t, 1, st.VisibleCount(forest))
}

func TestThreadState_BeginDeleteBlocksSecondSubmit(t *testing.T) {
	st := NewThreadState()

	require.True(t, st.BeginDelete(cid(1)))
	assert.True(t, st.IsDeleting(cid(1)))
	assert.False(t, st.BeginDelete(cid(1)), "second submit while in flight must be refused")

	st.EndDelete(cid(1))
	assert.False(t, st.IsDeleting(cid(1)))
	assert.True(t, st.BeginDelete(cid(1)), "guard must reset once the delete finishes")
}

func TestThreadState_ReplyFlag(t *testing.T) {
	st := NewThreadState()

	assert.False(t, st.IsReplying(cid(3)))
	st.BeginReply(cid(3))
	assert.True(t, st.IsReplying(cid(3)))
	st.EndReply(cid(3))
	assert.False(t, st.IsReplying(cid(3)))
}

func TestThreadState_ForgetDropsAllFlags(t *testing.T) {
	st := NewThreadState()

	st.SetCollapsed(cid(9), true)
	require.True(t, st.BeginDelete(cid(9)))

	st.Forget(cid(9))
	assert.False(t, st.IsCollapsed(cid(9)))
	assert.False(t, st.IsDeleting(cid(9)))
	assert.True(t, st.BeginDelete(cid(9)))
}
