package seed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPassesThroughClassifiedErrors(t *testing.T) {
	base := ErrConnectivity(errors.New("dial tcp: timeout"))
	wrapped := fmt.Errorf("open store: %w", base)

	serr := Classify(wrapped)
	assert.Equal(t, KindConnectivity, serr.Kind)
	assert.Same(t, base, serr)
}

func TestClassifyWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("insert rejected")
	serr := Classify(cause)

	assert.Equal(t, KindUnknown, serr.Kind)
	assert.NotEmpty(t, serr.Message)
	assert.NotEmpty(t, serr.Suggestion)
	assert.ErrorIs(t, serr, cause)
}

func TestErrReferentialNamesTheFailingIndex(t *testing.T) {
	serr := ErrReferential(7, "ghost")

	require.Equal(t, KindReferential, serr.Kind)
	assert.Contains(t, serr.Message, "invoice 7")
	assert.Contains(t, serr.Message, `"ghost"`)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root")
	serr := ErrConnectivity(cause)

	assert.ErrorIs(t, serr, cause)
	assert.Contains(t, serr.Error(), "root")
}
