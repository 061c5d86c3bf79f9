package witness_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/originals"
	"github.com/onionoriginals/sdk-sub004/witness"
)

func makeEntry(t *testing.T) (originals.LogEntry, *keys.KeySigner) {
	t.Helper()
	pair, err := keys.Generate(keys.Ed25519)
	require.NoError(t, err)
	signer, err := keys.NewKeySigner(pair, "did:example:author", "key-1")
	require.NoError(t, err)

	resources := []originals.Resource{{ID: "main", Hash: "zabc"}}
	o, err := originals.Create(resources, signer, nil)
	require.NoError(t, err)
	return o.Log.Events[0], signer
}

func TestThresholdNotMet(t *testing.T) {
	entry, _ := makeEntry(t)

	witnessPair, err := keys.Generate(keys.Ed25519)
	require.NoError(t, err)
	witnessSigner, err := keys.NewKeySigner(witnessPair, "did:example:witness1", "key-1")
	require.NoError(t, err)

	w := witness.NewLocalWitness("w1", witnessSigner)
	result, err := witness.Collect(entry, []witness.Service{w}, 2, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Proofs, 1)

	entryWithWitness := witness.AddWitnessProofs(entry, result.Proofs)

	tr := witness.VerifyWitnessProofs(entryWithWitness, witness.ThresholdOptions{Threshold: 2})
	assert.False(t, tr.Valid)
	assert.Equal(t, 1, tr.WitnessCount)
	assert.Equal(t, 1, tr.TrustedCount)
}

func TestThresholdMetWithTrustedWitnesses(t *testing.T) {
	entry, _ := makeEntry(t)

	var proofs []keys.Proof
	var trustedDIDs []string
	for i := 0; i < 3; i++ {
		pair, err := keys.Generate(keys.Ed25519)
		require.NoError(t, err)
		wDID := "did:example:witness"
		signer, err := keys.NewKeySigner(pair, wDID, "key-1")
		require.NoError(t, err)
		w := witness.NewLocalWitness("w", signer)
		result, err := witness.Collect(entry, []witness.Service{w}, 1, time.Second)
		require.NoError(t, err)
		proofs = append(proofs, result.Proofs...)
		trustedDIDs = append(trustedDIDs, wDID)
	}

	entryWithWitnesses := witness.AddWitnessProofs(entry, proofs)
	tr := witness.VerifyWitnessProofs(entryWithWitnesses, witness.ThresholdOptions{
		Threshold:        2,
		TrustedWitnesses: trustedDIDs,
	})
	assert.True(t, tr.Valid)
	assert.Equal(t, 3, tr.TrustedCount)
}

func TestCollectNeverErrorsOnWitnessFailure(t *testing.T) {
	entry, _ := makeEntry(t)
	failing := &failingService{id: "bad"}

	result, err := witness.Collect(entry, []witness.Service{failing}, 1, time.Second)
	require.NoError(t, err)
	assert.Empty(t, result.Proofs)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad", result.Errors[0].WitnessID)
	assert.False(t, result.ThresholdMet)
}

type failingService struct{ id string }

func (f *failingService) ID() string { return f.id }
func (f *failingService) Witness(ctx context.Context, entry originals.LogEntry) (*keys.Proof, error) {
	return nil, errWitnessUnavailable
}

var errWitnessUnavailable = errors.New("witness unavailable")
