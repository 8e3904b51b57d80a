package draftapi

import "draft-server/internal/timeline"

// Store holds the two registry namespaces: folder id → folder handle and
// draft name → open session. Implementations are not safe for concurrent
// use; the Registry provides the locking.
type Store interface {
	GetFolder(id string) (*timeline.Folder, bool)
	SetFolder(id string, f *timeline.Folder)
	GetDraft(name string) (*timeline.Draft, bool)
	SetDraft(name string, d *timeline.Draft)
	DeleteDraft(name string)
	DraftCount() int
}

// InMemoryStore is the map-backed Store.
type InMemoryStore struct {
	folders map[string]*timeline.Folder
	drafts  map[string]*timeline.Draft
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		folders: make(map[string]*timeline.Folder),
		drafts:  make(map[string]*timeline.Draft),
	}
}

// GetFolder implements Store.GetFolder.
func (s *InMemoryStore) GetFolder(id string) (*timeline.Folder, bool) {
	f, ok := s.folders[id]
	return f, ok
}

// SetFolder implements Store.SetFolder.
func (s *InMemoryStore) SetFolder(id string, f *timeline.Folder) {
	s.folders[id] = f
}

// GetDraft implements Store.GetDraft.
func (s *InMemoryStore) GetDraft(name string) (*timeline.Draft, bool) {
	d, ok := s.drafts[name]
	return d, ok
}

// SetDraft implements Store.SetDraft.
func (s *InMemoryStore) SetDraft(name string, d *timeline.Draft) {
	s.drafts[name] = d
}

// DeleteDraft implements Store.DeleteDraft.
func (s *InMemoryStore) DeleteDraft(name string) {
	delete(s.drafts, name)
}

// DraftCount implements Store.DraftCount.
func (s *InMemoryStore) DraftCount() int {
	return len(s.drafts)
}
