// file: internals/features/discussions/comments/service/thread_state.go
package service

import (
	"sync"

	"github.com/google/uuid"
)

/* =========================================================
   Thread UI/process state, keyed by comment id
   ========================================================= */

type nodeFlags struct {
	collapsed bool
	deleting  bool
	replying  bool
}

// ThreadState tracks interaction state that must outlive a tree rebuild.
// Keys are comment ids, never tree positions, so adding a reply somewhere
// else in the thread cannot reset a sibling's collapse flag.
type ThreadState struct {
	mu    sync.RWMutex
	nodes map[uuid.UUID]*nodeFlags
}

func NewThreadState() *ThreadState {
	return &ThreadState{nodes: make(map[uuid.UUID]*nodeFlags)}
}

func (s *ThreadState) flags(id uuid.UUID) *nodeFlags {
	f, ok := s.nodes[id]
	if !ok {
		f = &nodeFlags{}
		s.nodes[id] = f
	}
	return f
}

// ==============================
// Collapse
// ==============================

func (s *ThreadState) SetCollapsed(id uuid.UUID, collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags(id).collapsed = collapsed
}

// IsCollapsed defaults to false for unknown ids.
func (s *ThreadState) IsCollapsed(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.nodes[id]
	return ok && f.collapsed
}

// ==============================
// Delete guard (double-submit protection)
// ==============================

// BeginDelete marks the node as having a delete in flight.
// Returns false when one is already running, in which case the caller
// must not submit a second delete.
func (s *ThreadState) BeginDelete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flags(id)
	if f.deleting {
		return false
	}
	f.deleting = true
	return true
}

func (s *ThreadState) EndDelete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.nodes[id]; ok {
		f.deleting = false
	}
}

func (s *ThreadState) IsDeleting(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.nodes[id]
	return ok && f.deleting
}

// ==============================
// Reply composer
// ==============================

func (s *ThreadState) BeginReply(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags(id).replying = true
}

func (s *ThreadState) EndReply(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.nodes[id]; ok {
		f.replying = false
	}
}

func (s *ThreadState) IsReplying(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.nodes[id]
	return ok && f.replying
}

// Forget drops all state for an id, used after its row is deleted.
func (s *ThreadState) Forget(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, id)
}

// ==============================
// Render view
// ==============================

// HideCollapsed returns a render copy of the forest where the subtree under
// each collapsed node is hidden. The input forest is left untouched: the
// children stay attached to the source tree, so expanding again needs no
// re-fetch.
func (s *ThreadState) HideCollapsed(nodes []*ThreadNode) []*ThreadNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hideCollapsedLocked(nodes)
}

func (s *ThreadState) hideCollapsedLocked(nodes []*ThreadNode) []*ThreadNode {
	out := make([]*ThreadNode, 0, len(nodes))
	for _, n := range nodes {
		copied := &ThreadNode{Comment: n.Comment, Depth: n.Depth}
		if f, ok := s.nodes[n.Comment.CommentID]; !ok || !f.collapsed {
			copied.Children = s.hideCollapsedLocked(n.Children)
		}
		out = append(out, copied)
	}
	return out
}

// VisibleCount counts the nodes a render of the forest would show. A collapsed
// node itself stays visible, its subtree does not.
func (s *ThreadState) VisibleCount(nodes []*ThreadNode) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleCountLocked(nodes)
}

func (s *ThreadState) visibleCountLocked(nodes []*ThreadNode) int {
	total := 0
	for _, n := range nodes {
		total++
		if f, ok := s.nodes[n.Comment.CommentID]; !ok || !f.collapsed {
			total += s.visibleCountLocked(n.Children)
		}
	}
	return total
}
