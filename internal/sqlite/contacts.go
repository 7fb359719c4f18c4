// Store operations for the SQLite backend. Each operation hydrates between
// rows and *types.Contact and runs the shared field validation before any
// mutation commits.
package sqlite

import (
	"database/sql"
	"errors"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

const contactColumns = "id, first_name, last_name, phone, email, address"

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateContact reads one row into a Contact.
func hydrateContact(s scanner) (*types.Contact, error) {
	var c types.Contact
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every contact in ascending ID order. The primary key index
// supplies the order; no sort happens at read time.
func (b *Backend) List() ([]*types.Contact, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := b.db.Query("SELECT " + contactColumns + " FROM contacts ORDER BY id ASC")
	if err != nil {
		return nil, storageErr("listing contacts", err)
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		c, err := hydrateContact(rows)
		if err != nil {
			return nil, storageErr("scanning contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing contacts", err)
	}
	return contacts, nil
}

// Get retrieves the contact with the given ID.
func (b *Backend) Get(id string) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.getLocked(id)
}

// getLocked fetches a single contact. The caller must hold b.mu and have
// checked the attached state.
func (b *Backend) getLocked(id string) (*types.Contact, error) {
	row := b.db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	c, err := hydrateContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, storageErr("getting contact", err)
	}
	return c, nil
}

// Add validates the candidate and inserts it. Returns ErrDuplicateID when
// the ID is already present; the table is unchanged on failure.
func (b *Backend) Add(c *types.Contact) (*types.Contact, error) {
	if err := types.Validate(c).Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM contacts WHERE id = ?", c.ID).Scan(&one)
	if err == nil {
		return nil, types.ErrDuplicateID
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("checking contact existence", err)
	}

	_, err = b.db.Exec(
		"INSERT INTO contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.FirstName, c.LastName, c.Phone, c.Email, c.Address,
	)
	if err != nil {
		return nil, storageErr("inserting contact", err)
	}
	return c.Clone(), nil
}

// Update merges the patch over the stored record, validates the merged
// result, and commits it in a transaction. The prior record survives any
// failure; the ID is immutable.
func (b *Backend) Update(id string, patch types.Patch) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	existing, err := b.getLocked(id)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(existing)
	merged.ID = id
	if err := types.Validate(merged).Err(); err != nil {
		return nil, err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE contacts SET first_name = ?, last_name = ?, phone = ?, email = ?, address = ? WHERE id = ?",
		merged.FirstName, merged.LastName, merged.Phone, merged.Email, merged.Address, id,
	)
	if err != nil {
		return nil, storageErr("updating contact", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing update", err)
	}
	return merged, nil
}

// Remove deletes the contact with the given ID.
func (b *Backend) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	res, err := b.db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return storageErr("deleting contact", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("deleting contact", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
