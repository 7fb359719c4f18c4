package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/memory"
)

func TestLoadValidRecords(t *testing.T) {
	input := strings.Join([]string{
		"B2,Ann,Wu,555-222-3333,ann@y.org,2 Oak Ave",
		"A1,Jo,Li,555-123-4567,jo@x.com,1 Main St",
	}, "\n")

	idx := memory.NewIndex()
	summary, err := Load(idx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Loaded)
	assert.Equal(t, 0, summary.Skipped)

	contacts, err := idx.List()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "A1", contacts[0].ID, "listing is sorted regardless of load order")
	assert.Equal(t, "B2", contacts[1].ID)
}

func TestLoadSkipsInvalidWithoutAborting(t *testing.T) {
	input := strings.Join([]string{
		"A1,Jo,Li,555-123-4567,jo@x.com,1 Main St",
		"B2,Ann,Wu,bad-phone,ann@y.org,2 Oak Ave", // invalid phone
		"not a contact line",                      // malformed
		"A1,Jo,Li,555-123-4567,jo@x.com,dup",      // duplicate id
		"C3,Moe,Ng,555-444-5555,moe@z.net,",       // empty address is fine
	}, "\n")

	idx := memory.NewIndex()
	summary, err := Load(idx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Loaded)
	assert.Equal(t, 3, summary.Skipped)
	assert.Len(t, summary.Reasons, 3)

	contacts, err := idx.List()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "A1", contacts[0].ID)
	assert.Equal(t, "C3", contacts[1].ID)
}

func TestLoadKeepsCommasInAddress(t *testing.T) {
	input := "A1,Jo,Li,555-123-4567,jo@x.com,1 Main St, Apt 4, Springfield"

	idx := memory.NewIndex()
	summary, err := Load(idx, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Loaded)

	got, err := idx.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Apt 4, Springfield", got.Address)
}

func TestLoadIgnoresBlankLines(t *testing.T) {
	input := "\n\nA1,Jo,Li,555-123-4567,jo@x.com,\n\n"

	idx := memory.NewIndex()
	summary, err := Load(idx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 0, summary.Skipped)
}
