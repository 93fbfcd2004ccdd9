package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("123456", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "123456", hashed)
	assert.True(t, Verify("123456", hashed))
	assert.False(t, Verify("654321", hashed))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("123456", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := Hash("123456", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("123456", first))
	assert.True(t, Verify("123456", second))
}

func TestHashClampsInvalidCost(t *testing.T) {
	hashed, err := Hash("123456", 99)
	require.NoError(t, err)
	assert.True(t, Verify("123456", hashed))

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
