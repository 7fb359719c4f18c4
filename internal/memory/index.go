// Package memory implements the in-memory contact store as an ordered
// index: a slice of contacts kept sorted by ID, maintained incrementally on
// every mutation. Point lookup is a binary search over the sorted slice and
// enumeration is a linear walk, so order is never reconstructed on read.
package memory

import (
	"sort"
	"sync"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Compile-time interface check: Index must implement Store.
var _ types.Store = (*Index)(nil)

// Index is an ordered contact store. A single writer lock serializes
// mutations to preserve the uniqueness and ordering invariants; reads share
// the read lock.
type Index struct {
	mu       sync.RWMutex
	contacts []*types.Contact // sorted ascending by ID
}

// NewIndex returns an empty ordered index.
func NewIndex() *Index {
	return &Index{}
}

// search returns the insertion point for id and whether a contact with that
// ID is already present. The caller must hold i.mu.
func (i *Index) search(id string) (int, bool) {
	pos := sort.Search(len(i.contacts), func(n int) bool {
		return i.contacts[n].ID >= id
	})
	return pos, pos < len(i.contacts) && i.contacts[pos].ID == id
}

// List returns a copy of every contact in ascending ID order.
func (i *Index) List() ([]*types.Contact, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]*types.Contact, len(i.contacts))
	for n, c := range i.contacts {
		out[n] = c.Clone()
	}
	return out, nil
}

// Get retrieves the contact with the given ID by binary search.
// Returns ErrNotFound if the ID is absent.
func (i *Index) Get(id string) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	pos, found := i.search(id)
	if !found {
		return nil, types.ErrNotFound
	}
	return i.contacts[pos].Clone(), nil
}

// Add validates the candidate and inserts it at its sorted position.
// Returns ErrDuplicateID if the ID is already present; the index is
// unchanged on any failure.
func (i *Index) Add(c *types.Contact) (*types.Contact, error) {
	if err := types.Validate(c).Err(); err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	pos, found := i.search(c.ID)
	if found {
		return nil, types.ErrDuplicateID
	}

	stored := c.Clone()
	i.contacts = append(i.contacts, nil)
	copy(i.contacts[pos+1:], i.contacts[pos:])
	i.contacts[pos] = stored

	return stored.Clone(), nil
}

// Update merges the patch over the existing record and validates the merged
// result as a complete record before committing. The prior record is left
// unchanged when the merge fails validation; the ID is immutable.
func (i *Index) Update(id string, patch types.Patch) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	pos, found := i.search(id)
	if !found {
		return nil, types.ErrNotFound
	}

	merged := patch.Apply(i.contacts[pos])
	merged.ID = id
	if err := types.Validate(merged).Err(); err != nil {
		return nil, err
	}

	i.contacts[pos] = merged
	return merged.Clone(), nil
}

// Remove deletes the contact with the given ID, preserving order of the
// remaining records. Returns ErrNotFound if the ID is absent.
func (i *Index) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	pos, found := i.search(id)
	if !found {
		return types.ErrNotFound
	}

	i.contacts = append(i.contacts[:pos], i.contacts[pos+1:]...)
	return nil
}

// Len returns the number of stored contacts.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.contacts)
}
