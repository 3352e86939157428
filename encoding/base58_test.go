package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase58RoundTrip(t *testing.T) {
	payload := []byte("curvekit base58 payload")
	encoded := Base58(payload)
	decoded, err := Base58Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i)
	}
	encoded := Base58Check(0x80, payload)
	version, decoded, err := Base58CheckDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), version)
	require.Equal(t, payload, decoded)
}

func TestBase58CheckDecodeRejectsBadChecksum(t *testing.T) {
	encoded := Base58Check(0x00, []byte("payload"))
	tampered := encoded[:len(encoded)-1] + "z"
	_, _, err := Base58CheckDecode(tampered)
	require.Error(t, err)
}

func TestBase58DecodeRejectsInvalidCharacters(t *testing.T) {
	_, err := Base58Decode("not valid base58 with spaces!!")
	require.Error(t, err)
}
