package witness_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/sdk-sub004/witness"
)

type fakeCalendar struct {
	submitted []byte
	pending   []byte

	submitErr  error
	upgradeErr error

	attestedAt  string
	merkleProof []byte
}

func (c *fakeCalendar) Submit(ctx context.Context, digest []byte) ([]byte, error) {
	if c.submitErr != nil {
		return nil, c.submitErr
	}
	c.submitted = digest
	return c.pending, nil
}

func (c *fakeCalendar) Upgrade(ctx context.Context, pending []byte) ([]byte, string, error) {
	if c.upgradeErr != nil {
		return nil, "", c.upgradeErr
	}
	return c.merkleProof, c.attestedAt, nil
}

func TestBitcoinTimestampWitnessAlwaysDefersToUpgrade(t *testing.T) {
	entry, _ := makeEntry(t)
	cal := &fakeCalendar{pending: []byte("pending-token")}
	w := witness.NewBitcoinTimestampWitness("calendar1", cal)

	_, err := w.Witness(context.Background(), entry)
	require.Error(t, err)
	assert.NotEmpty(t, cal.submitted)
}

func TestBitcoinTimestampWitnessSubmitFailure(t *testing.T) {
	entry, _ := makeEntry(t)
	cal := &fakeCalendar{submitErr: errors.New("calendar down")}
	w := witness.NewBitcoinTimestampWitness("calendar1", cal)

	_, err := w.Witness(context.Background(), entry)
	require.Error(t, err)
}

func TestBitcoinTimestampWitnessUpgrade(t *testing.T) {
	cal := &fakeCalendar{
		merkleProof: []byte("merkle-proof-bytes"),
		attestedAt:  "2024-06-01T00:00:00Z",
	}
	w := witness.NewBitcoinTimestampWitness("calendar1", cal)

	proof, err := w.Upgrade(context.Background(), []byte("pending-token"))
	require.NoError(t, err)
	assert.Equal(t, "bitcoin-ots-2024", proof.Suite)
	assert.Equal(t, "merkle-proof-bytes", proof.Value)
	assert.Equal(t, "2024-06-01T00:00:00Z", proof.WitnessedAt)
}

func TestBitcoinTimestampWitnessUpgradeFailure(t *testing.T) {
	cal := &fakeCalendar{upgradeErr: errors.New("not yet confirmed")}
	w := witness.NewBitcoinTimestampWitness("calendar1", cal)

	_, err := w.Upgrade(context.Background(), []byte("pending-token"))
	require.Error(t, err)
}
