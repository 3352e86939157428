package p256

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/rng"
)

func TestGenerateKeyProducesValidPrivateKey(t *testing.T) {
	priv := GenerateKey(rng.Default)
	require.NoError(t, ValidatePrivate(priv))
}

func TestValidatePrivateRejectsZero(t *testing.T) {
	var zero Scalar
	require.Error(t, ValidatePrivate(&zero))
}

func TestPublicFromPrivateIsOnCurve(t *testing.T) {
	priv := GenerateKey(rng.Default)
	pub, err := PublicFromPrivate(priv)
	require.NoError(t, err)
	require.True(t, pub.IsOnCurve())
	require.False(t, pub.IsIdentity())
}

func TestTweakAddMatchesDirectComputation(t *testing.T) {
	priv := GenerateKey(rng.Default)
	tweak := GenerateKey(rng.Default)

	tweaked, err := TweakAdd(priv, tweak)
	require.NoError(t, err)

	tweakedPub, err := PublicFromPrivate(tweaked)
	require.NoError(t, err)

	privPub, err := PublicFromPrivate(priv)
	require.NoError(t, err)
	tweakPub, err := PublicFromPrivate(tweak)
	require.NoError(t, err)
	sumPub := Add(privPub, tweakPub)

	require.True(t, tweakedPub.Equal(sumPub))
}

func TestTweakAddRejectsCancellingTweak(t *testing.T) {
	priv := GenerateKey(rng.Default)
	var negPriv Scalar
	negPriv.Negate(priv)
	_, err := TweakAdd(priv, &negPriv)
	require.Error(t, err)
}
