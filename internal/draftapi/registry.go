package draftapi

import (
	"errors"
	"sync"

	"draft-server/internal/timeline"
)

// Registry is the process-wide, concurrency-safe bookkeeping of registered
// folders and open draft sessions. One lock covers both namespaces; it
// brackets the map accesses only, so engine-side construction runs outside
// the lock and distinct sessions proceed fully in parallel.
type Registry struct {
	mu    sync.RWMutex
	store Store
}

// NewRegistry constructs a registry over a default in-memory store.
func NewRegistry() *Registry {
	return NewRegistryWithStore(NewInMemoryStore())
}

// NewRegistryWithStore constructs a registry over the given store. Useful
// for tests or alternative backing maps.
func NewRegistryWithStore(store Store) *Registry {
	return &Registry{store: store}
}

// RegisterFolder inserts the folder under id, overwriting any previous
// registration with the same id.
func (r *Registry) RegisterFolder(id string, folder *timeline.Folder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.SetFolder(id, folder)
}

// LookupFolder returns the folder registered under id.
func (r *Registry) LookupFolder(id string) (*timeline.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	folder, ok := r.store.GetFolder(id)
	if !ok {
		return nil, notFoundf("Draft folder '%s' not found", id)
	}
	return folder, nil
}

// CreateDraft creates a draft named name in the folder registered under
// folderID and records the open session. allowReplace governs on-disk
// replacement only: a successful create always replaces an open in-memory
// session of the same name. Racing creators for one name both reach the
// engine; the last map write wins.
func (r *Registry) CreateDraft(folderID, name string, width, height int, allowReplace bool) (*timeline.Draft, error) {
	folder, err := r.LookupFolder(folderID)
	if err != nil {
		return nil, err
	}

	draft, err := folder.CreateDraft(name, width, height, allowReplace)
	if err != nil {
		if errors.Is(err, timeline.ErrDraftExists) {
			return nil, conflictf("%v", err)
		}
		return nil, internalf("create draft: %v", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.SetDraft(name, draft)
	return draft, nil
}

// LookupDraft returns the open session registered under name.
func (r *Registry) LookupDraft(name string) (*timeline.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.store.GetDraft(name)
	if !ok {
		return nil, notFoundf("Draft '%s' not found", name)
	}
	return draft, nil
}

// CloseDraft removes the session from the registry. The persisted draft
// directory is untouched.
func (r *Registry) CloseDraft(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store.GetDraft(name); !ok {
		return notFoundf("Draft '%s' not found", name)
	}
	r.store.DeleteDraft(name)
	return nil
}

// ActiveDraftCount returns the number of open sessions. Used for metrics.
func (r *Registry) ActiveDraftCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.DraftCount()
}
