package h2c

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDSTAcceptsNormalTag(t *testing.T) {
	require.NoError(t, ValidateDST([]byte("curvekit-h2c-test")))
}

func TestValidateDSTRejectsEmpty(t *testing.T) {
	require.Error(t, ValidateDST(nil))
}

func TestValidateDSTRejectsOversized(t *testing.T) {
	require.Error(t, ValidateDST(make([]byte, 256)))
}

func TestValidateDSTAccepts255Bytes(t *testing.T) {
	require.NoError(t, ValidateDST(make([]byte, 255)))
}
