// file: internals/features/discussions/comments/service/thread_builder_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "studenthub_backend/internals/features/discussions/comments/model"
)

// cid builds a deterministic uuid whose byte order follows n, so tie-break
// assertions stay readable.
func cid(n byte) uuid.UUID {
	var u uuid.UUID
	u[15] = n
	return u
}

func mkComment(id byte, parent *uuid.UUID, at time.Time) model.CommentModel {
	return model.CommentModel{
		CommentID:         cid(id),
		CommentCourseCode: "CS401",
		CommentUserID:     cid(200),
		CommentParentID:   parent,
		CommentContent:    "comment",
		CommentCreatedAt:  at,
	}
}

func ptr(u uuid.UUID) *uuid.UUID { return &u }

func TestBuildThread_NestedDepths(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// c1 is the root; c2 and c3 reply to c1; c4 replies to c2.
	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(1*time.Minute)),
		mkComment(3, ptr(cid(1)), base.Add(2*time.Minute)),
		mkComment(4, ptr(cid(2)), base.Add(3*time.Minute)),
	}

	forest := BuildThread(rows)
	require.Len(t, forest, 1)

	root := forest[0]
	assert.Equal(t, cid(1), root.Comment.CommentID)
	assert.Equal(t, 0, root.Depth)
	require.Len(t, root.Children, 2)

	c2 := root.Children[0]
	c3 := root.Children[1]
	assert.Equal(t, cid(2), c2.Comment.CommentID)
	assert.Equal(t, 1, c2.Depth)
	assert.Equal(t, cid(3), c3.Comment.CommentID)
	assert.Equal(t, 1, c3.Depth)

	require.Len(t, c2.Children, 1)
	assert.Equal(t, cid(4), c2.Children[0].Comment.CommentID)
	assert.Equal(t, 2, c2.Children[0].Depth)
	assert.Empty(t, c3.Children)
}

func TestBuildThread_EveryRowAppearsExactlyOnce(t *testing.T) {
	base := time.Now().UTC()

	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(time.Second)),
		mkComment(3, ptr(cid(2)), base.Add(2*time.Second)),
		mkComment(4, nil, base.Add(3*time.Second)),
		mkComment(5, ptr(cid(4)), base.Add(4*time.Second)),
		mkComment(6, ptr(cid(99)), base.Add(5*time.Second)), // orphan
	}

	forest := BuildThread(rows)
	assert.Equal(t, len(rows), CountNodes(forest))

	seen := map[uuid.UUID]bool{}
	var walk func(nodes []*ThreadNode)
	walk = func(nodes []*ThreadNode) {
		for _, n := range nodes {
			assert.False(t, seen[n.Comment.CommentID], "node placed twice")
			seen[n.Comment.CommentID] = true
			walk(n.Children)
		}
	}
	walk(forest)
	assert.Len(t, seen, len(rows))
}

func TestBuildThread_OrphanPromotedToRoot(t *testing.T) {
	base := time.Now().UTC()

	// c2's parent was deleted out from under it; c3 still replies to c2.
	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(77)), base.Add(time.Minute)),
		mkComment(3, ptr(cid(2)), base.Add(2*time.Minute)),
	}

	forest := BuildThread(rows)
	require.Len(t, forest, 2)

	assert.Equal(t, cid(1), forest[0].Comment.CommentID)
	orphan := forest[1]
	assert.Equal(t, cid(2), orphan.Comment.CommentID)
	assert.Equal(t, 0, orphan.Depth)

	// the orphan keeps its own subtree
	require.Len(t, orphan.Children, 1)
	assert.Equal(t, cid(3), orphan.Children[0].Comment.CommentID)
	assert.Equal(t, 1, orphan.Children[0].Depth)
}

func TestBuildThread_SiblingOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// out-of-order input, plus an exact created_at tie between c5 and c4
	rows := []model.CommentModel{
		mkComment(3, nil, base.Add(2*time.Minute)),
		mkComment(5, nil, base.Add(time.Minute)),
		mkComment(4, nil, base.Add(time.Minute)),
		mkComment(1, nil, base),
	}

	forest := BuildThread(rows)
	require.Len(t, forest, 4)
	assert.Equal(t, cid(1), forest[0].Comment.CommentID)
	// tie: id bytes decide, 4 before 5
	assert.Equal(t, cid(4), forest[1].Comment.CommentID)
	assert.Equal(t, cid(5), forest[2].Comment.CommentID)
	assert.Equal(t, cid(3), forest[3].Comment.CommentID)
}

func TestBuildThread_RebuildIsDeterministic(t *testing.T) {
	base := time.Now().UTC()

	rows := []model.CommentModel{
		mkComment(1, nil, base),
		mkComment(2, ptr(cid(1)), base.Add(time.Second)),
		mkComment(3, ptr(cid(1)), base.Add(time.Second)), // tie with c2
		mkComment(4, ptr(cid(3)), base.Add(2*time.Second)),
	}

	flatten := func(forest []*ThreadNode) []uuid.UUID {
		var out []uuid.UUID
		var walk func(nodes []*ThreadNode)
		walk = func(nodes []*ThreadNode) {
			for _, n := range nodes {
				out = append(out, n.Comment.CommentID)
				walk(n.Children)
			}
		}
		walk(forest)
		return out
	}

	first := flatten(BuildThread(rows))
	second := flatten(BuildThread(rows))
	assert.Equal(t, first, second)
}

func TestBuildThread_Empty(t *testing.T) {
	forest := BuildThread(nil)
	assert.Empty(t, forest)
	assert.Equal(t, 0, CountNodes(forest))
}
