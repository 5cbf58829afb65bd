// file: internals/features/discussions/comments/service/thread_builder.go
package service

import (
	"bytes"
	"sort"

	"github.com/google/uuid"

	model "studenthub_backend/internals/features/discussions/comments/model"
)

/* =========================================================
   Thread builder: flat rows → ordered forest
   ========================================================= */

// ThreadNode is a derived view over a comment row. It borrows the row and
// is rebuilt from scratch whenever the flat set changes; nothing mutates
// a built tree in place.
type ThreadNode struct {
	Comment  *model.CommentModel
	Depth    int
	Children []*ThreadNode
}

// BuildThread turns the flat comment set of one course into a forest.
//
// Rules:
//   - top-level comments (nil parent) become depth-0 roots;
//   - a comment whose parent is missing from the input set is an orphan and
//     is promoted to a depth-0 root, never dropped;
//   - siblings are ordered by created_at ascending, with the id bytes as a
//     stable tie-break, so the same input always yields the same tree.
func BuildThread(comments []model.CommentModel) []*ThreadNode {
	index := make(map[uuid.UUID]*ThreadNode, len(comments))
	for i := range comments {
		c := &comments[i]
		index[c.CommentID] = &ThreadNode{Comment: c}
	}

	roots := make([]*ThreadNode, 0)
	for i := range comments {
		c := &comments[i]
		node := index[c.CommentID]

		if c.CommentParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*c.CommentParentID]
		if !ok {
			// stale reply row, parent already gone: promote, don't drop
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(roots)
	for _, n := range index {
		sortSiblings(n.Children)
	}

	for _, root := range roots {
		assignDepth(root, 0)
	}
	return roots
}

func sortSiblings(nodes []*ThreadNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Comment, nodes[j].Comment
		if !a.CommentCreatedAt.Equal(b.CommentCreatedAt) {
			return a.CommentCreatedAt.Before(b.CommentCreatedAt)
		}
		return bytes.Compare(a.CommentID[:], b.CommentID[:]) < 0
	})
}

func assignDepth(n *ThreadNode, depth int) {
	n.Depth = depth
	for _, child := range n.Children {
		assignDepth(child, depth+1)
	}
}

// CountNodes walks a forest and returns the number of nodes in it.
func CountNodes(nodes []*ThreadNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + CountNodes(n.Children)
	}
	return total
}
