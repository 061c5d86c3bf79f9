package keys_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/sdk-sub004/keys"
)

func TestSignVerifyRoundTripAllCurves(t *testing.T) {
	for _, typ := range []keys.Type{keys.Ed25519, keys.Secp256k1, keys.P256} {
		typ := typ
		t.Run(string(typ), func(t *testing.T) {
			pair, err := keys.Generate(typ)
			require.NoError(t, err)

			privRaw, err := keys.DecodePrivateKey(typ, pair.PrivateKey)
			require.NoError(t, err)
			pubRaw, err := keys.DecodePublicKey(typ, pair.PublicKey)
			require.NoError(t, err)

			data := map[string]any{"hello": "world", "n": 7}

			proof, err := keys.CreateProof(typ, privRaw, "did:example:123#key-1", data, time.Time{})
			require.NoError(t, err)
			assert.Equal(t, typ.Suite(), proof.Suite)
			assert.Equal(t, keys.ProofType, proof.Type)

			assert.True(t, keys.VerifyProof(typ, pubRaw, data, *proof))

			tampered := map[string]any{"hello": "world", "n": 8}
			assert.False(t, keys.VerifyProof(typ, pubRaw, tampered, *proof))
		})
	}
}

func TestDetectTypeFromPublicKey(t *testing.T) {
	pair, err := keys.Generate(keys.Secp256k1)
	require.NoError(t, err)

	got, err := keys.DetectType(pair.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, keys.Secp256k1, got)
}

func TestKeySignerAndVerifier(t *testing.T) {
	pair, err := keys.Generate(keys.Ed25519)
	require.NoError(t, err)

	signer, err := keys.NewKeySigner(pair, "did:peer:0zabc", "key-1")
	require.NoError(t, err)

	verifier, err := keys.NewKeyVerifier(keys.Ed25519, pair.PublicKey)
	require.NoError(t, err)

	data := map[string]any{"a": 1}
	proof, err := signer.Sign(data)
	require.NoError(t, err)
	assert.True(t, verifier.Verify(*proof, data))
}
