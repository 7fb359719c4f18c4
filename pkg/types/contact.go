package types

// Field length limits.
const (
	MaxIDLength      = 10
	MaxAddressLength = 200
)

// Contact represents a single address-book entry. ID is the sort and lookup
// key; it is unique among all contacts and immutable after creation.
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
}

// Clone returns a copy of the contact. Stores hand out clones so callers
// cannot mutate stored records in place.
func (c *Contact) Clone() *Contact {
	cp := *c
	return &cp
}

// Patch describes a partial update to a contact. Nil fields are left
// unchanged; the ID is immutable and has no patch field. The merged result
// must validate as a complete record before it is committed.
type Patch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// Apply merges the patch over an existing contact and returns the candidate
// record. The receiver and the input are not modified.
func (p Patch) Apply(c *Contact) *Contact {
	merged := c.Clone()
	if p.FirstName != nil {
		merged.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		merged.LastName = *p.LastName
	}
	if p.Phone != nil {
		merged.Phone = *p.Phone
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.Address != nil {
		merged.Address = *p.Address
	}
	return merged
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil &&
		p.Email == nil && p.Address == nil
}
