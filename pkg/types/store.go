package types

import "errors"

// Store provides uniform CRUD access to the contact set. Every
// implementation enforces the same validation rules and keeps enumeration in
// ascending lexicographic ID order.
type Store interface {
	// List returns every stored contact ordered ascending by ID.
	List() ([]*Contact, error)

	// Get retrieves the contact with the given ID.
	// Returns ErrNotFound if no contact exists with that ID.
	Get(id string) (*Contact, error)

	// Add validates the candidate and inserts it. Returns the stored record,
	// a *ValidationError when any field fails its rule, or ErrDuplicateID
	// when the ID is already present. The store is unchanged on failure.
	Add(c *Contact) (*Contact, error)

	// Update merges the patch over the existing record, validates the result
	// as a complete record, and commits it. Returns ErrNotFound if the ID is
	// absent and a *ValidationError if the merged record is invalid; the
	// prior record is left unchanged on failure.
	Update(id string, patch Patch) (*Contact, error)

	// Remove deletes the contact with the given ID.
	// Returns ErrNotFound if no contact exists with that ID.
	Remove(id string) error
}

// Store operation errors. All are recoverable, caller-visible outcomes.
var (
	ErrNotFound    = errors.New("contact not found")
	ErrDuplicateID = errors.New("contact id already exists")
	ErrInvalidID   = errors.New("invalid contact id")
)

// ErrStorageUnavailable reports a backing database failure. It is never
// conflated with validation outcomes; only the persistent backend produces
// it.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)
