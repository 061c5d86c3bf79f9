package witness

import (
	"context"

	"github.com/onionoriginals/sdk-sub004/canon"
	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/oerrors"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// Calendar is the narrow interface a Bitcoin-anchored timestamping service
// (e.g. OpenTimestamps) exposes: submit a digest now, reconcile a Merkle
// proof against the chain later. BitcoinTimestampWitness is a prospective
// extension point; its completeness is not required.
type Calendar interface {
	Submit(ctx context.Context, digest []byte) (pending []byte, err error)
	Upgrade(ctx context.Context, pending []byte) (merkleProof []byte, attestedAt string, err error)
}

// BitcoinTimestampWitness submits the event hash to a Calendar and, once
// the calendar has upgraded the submission to an on-chain attestation,
// produces a WitnessProof whose Value carries the Merkle proof bytes
// instead of a signature. Reconciliation (polling Upgrade until it
// succeeds) is left to the caller; this type only shapes the submit/attest
// round trip.
type BitcoinTimestampWitness struct {
	id       string
	calendar Calendar
}

// NewBitcoinTimestampWitness wraps calendar as a witness identified by id.
func NewBitcoinTimestampWitness(id string, calendar Calendar) *BitcoinTimestampWitness {
	return &BitcoinTimestampWitness{id: id, calendar: calendar}
}

func (w *BitcoinTimestampWitness) ID() string { return w.id }

// Witness submits the entry hash and returns an ExternalError: a calendar
// attestation is not synchronous, so this always defers to Upgrade.
// Callers needing a completed attestation should poll Upgrade directly and
// construct the WitnessProof themselves once it resolves.
func (w *BitcoinTimestampWitness) Witness(ctx context.Context, entry originals.LogEntry) (*keys.Proof, error) {
	eventHash, err := originals.HashEntry(entry)
	if err != nil {
		return nil, err
	}
	digest, err := canon.DecodeMultihashDigest(eventHash)
	if err != nil {
		return nil, err
	}
	if _, err := w.calendar.Submit(ctx, digest); err != nil {
		return nil, oerrors.NewExternalError(err, "bitcoin timestamp witness: calendar submit failed")
	}
	return nil, oerrors.NewExternalError(nil, "bitcoin timestamp witness: attestation pending, call Upgrade once the calendar has confirmed it")
}

// Upgrade reconciles a previously-submitted digest against the calendar and,
// if confirmed, returns a WitnessProof carrying the Merkle proof as Value.
func (w *BitcoinTimestampWitness) Upgrade(ctx context.Context, pending []byte) (*keys.Proof, error) {
	merkleProof, attestedAt, err := w.calendar.Upgrade(ctx, pending)
	if err != nil {
		return nil, oerrors.NewExternalError(err, "bitcoin timestamp witness: calendar upgrade failed")
	}
	return &keys.Proof{
		Type:        keys.ProofType,
		Suite:       "bitcoin-ots-2024",
		Method:      "did:btco:calendar#" + w.id,
		Purpose:     keys.PurposeAssertionMethod,
		Value:       string(merkleProof),
		WitnessedAt: attestedAt,
	}, nil
}
