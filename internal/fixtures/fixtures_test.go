package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDatasetIntegrity(t *testing.T) {
	p := NewStatic()

	require.NotEmpty(t, p.Users())
	require.NotEmpty(t, p.Customers())
	require.NotEmpty(t, p.Invoices())
	assert.Len(t, p.Revenue(), 12)

	byID := map[string]bool{}
	for _, c := range p.Customers() {
		assert.False(t, byID[c.ID], "duplicate customer id %s", c.ID)
		byID[c.ID] = true
	}

	for i, inv := range p.Invoices() {
		assert.True(t, byID[inv.CustomerID], "invoice %d references unknown customer %s", i, inv.CustomerID)
		assert.Contains(t, []string{"paid", "pending"}, inv.Status)
		_, err := time.Parse("2006-01-02", inv.Date)
		assert.NoError(t, err, "invoice %d date %q", i, inv.Date)
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	p := NewStatic()

	users := p.Users()
	users[0].Email = "mutated@example.com"

	assert.Equal(t, "user@nextmail.com", p.Users()[0].Email)
}
