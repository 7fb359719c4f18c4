package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// validContact returns a candidate that passes every field rule.
func validContact() *Contact {
	return &Contact{
		ID:        "A1",
		FirstName: "Jo",
		LastName:  "Li",
		Phone:     "555-123-4567",
		Email:     "jo@x.com",
	}
}

func TestValidateAcceptsValidContact(t *testing.T) {
	report := Validate(validContact())
	assert.Empty(t, report)
	assert.NoError(t, report.Err())
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid short id", id: "A1"},
		{name: "exactly ten characters", id: "ABCDEFGHIJ"},
		{name: "empty id rejected", id: "", wantErr: true},
		{name: "whitespace only rejected", id: "   ", wantErr: true},
		{name: "eleven characters rejected", id: "ABCDEFGHIJK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			c.ID = tt.id
			report := Validate(c)
			if tt.wantErr {
				assert.Contains(t, report, "id")
			} else {
				assert.NotContains(t, report, "id")
			}
		})
	}
}

func TestValidateNames(t *testing.T) {
	c := validContact()
	c.FirstName = ""
	c.LastName = "  "
	report := Validate(c)

	assert.Contains(t, report, "firstName")
	assert.Contains(t, report, "lastName")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "plain address", email: "jo@x.com"},
		{name: "subdomain", email: "jo@mail.example.org"},
		{name: "plus tag", email: "jo+tag@x.com"},
		{name: "empty rejected", email: "", wantErr: true},
		{name: "missing at rejected", email: "jo.x.com", wantErr: true},
		{name: "missing dot after at rejected", email: "jo@xcom", wantErr: true},
		{name: "embedded space rejected", email: "jo smith@x.com", wantErr: true},
		{name: "double at rejected", email: "jo@@x.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			c.Email = tt.email
			report := Validate(c)
			if tt.wantErr {
				assert.Contains(t, report, "email")
			} else {
				assert.NotContains(t, report, "email")
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "dashed groups", phone: "555-123-4567"},
		{name: "bare digits", phone: "5551234567"},
		{name: "parenthesized area code", phone: "(555) 123-4567"},
		{name: "leading plus one", phone: "+1 555-123-4567"},
		{name: "dotted groups", phone: "555.123.4567"},
		{name: "empty rejected", phone: "", wantErr: true},
		{name: "too few digits rejected", phone: "555-1234", wantErr: true},
		{name: "letters rejected", phone: "bad", wantErr: true},
		{name: "too many digits rejected", phone: "55512345678", wantErr: true},
		{name: "plus without one rejected", phone: "+44 555 123 4567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			c.Phone = tt.phone
			report := Validate(c)
			if tt.wantErr {
				assert.Contains(t, report, "phone")
			} else {
				assert.NotContains(t, report, "phone")
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	c := validContact()
	c.Address = strings.Repeat("a", MaxAddressLength)
	assert.NotContains(t, Validate(c), "address")

	c.Address = strings.Repeat("a", MaxAddressLength+1)
	assert.Contains(t, Validate(c), "address")

	// Address is optional.
	c.Address = ""
	assert.Empty(t, Validate(c))
}

func TestValidateCollectsAllFailures(t *testing.T) {
	c := &Contact{}
	report := Validate(c)

	// Every required field appears in a single report; validation never
	// short-circuits on the first failure.
	for _, field := range []string{"id", "firstName", "lastName", "email", "phone"} {
		assert.Contains(t, report, field)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	c := validContact()
	c.Email = "broken"
	c.Phone = "bad"

	first := Validate(c)
	second := Validate(c)
	assert.Equal(t, first, second)
}

func TestReportErr(t *testing.T) {
	assert.NoError(t, Report{}.Err())

	err := Report{"phone": "phone is required", "id": "id is required"}.Err()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)

	// Fields are listed in sorted order for stable messages.
	assert.Equal(t, "validation failed: id: id is required; phone: phone is required", err.Error())
}
