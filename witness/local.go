package witness

import (
	"context"
	"time"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// LocalWitness is a signer-backed in-process witness, used in tests and for
// self-attestation. Verifier is optional; when set, it backs
// VerifyProof for local, network-free re-checking of this witness's own
// attestations.
type LocalWitness struct {
	id       string
	signer   keys.Signer
	verifier keys.Verifier
}

// NewLocalWitness wraps signer as a witness identified by id.
func NewLocalWitness(id string, signer keys.Signer) *LocalWitness {
	return &LocalWitness{id: id, signer: signer}
}

// NewLocalWitnessWithVerifier is NewLocalWitness plus a Verifier for
// VerifyProof.
func NewLocalWitnessWithVerifier(id string, signer keys.Signer, verifier keys.Verifier) *LocalWitness {
	return &LocalWitness{id: id, signer: signer, verifier: verifier}
}

func (w *LocalWitness) ID() string { return w.id }

// Witness signs entry.Data with w.signer and stamps the resulting proof
// with a WitnessedAt timestamp, turning an author-shaped Proof into a
// WitnessProof.
func (w *LocalWitness) Witness(ctx context.Context, entry originals.LogEntry) (*keys.Proof, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proof, err := w.signer.Sign(entry.Data)
	if err != nil {
		return nil, err
	}
	proof.WitnessedAt = time.Now().UTC().Format(time.RFC3339)
	return proof, nil
}

func (w *LocalWitness) VerifyProof(proof keys.Proof, entry originals.LogEntry) bool {
	if w.verifier == nil {
		return false
	}
	return w.verifier.Verify(proof, entry.Data)
}
