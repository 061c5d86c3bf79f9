// Package witness implements third-party attestation collection and
// threshold verification over Original log entries.
package witness

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// DefaultTimeout is the per-call fan-out deadline when the caller does not
// specify one.
const DefaultTimeout = 30 * time.Second

// Service is an independent party capable of witnessing an already-formed
// log entry.
type Service interface {
	ID() string
	Witness(ctx context.Context, entry originals.LogEntry) (*keys.Proof, error)
}

// VerifyingService is a Service that can also locally check a witness
// proof it (or a peer) produced, without a network round-trip.
type VerifyingService interface {
	Service
	VerifyProof(proof keys.Proof, entry originals.LogEntry) bool
}

// WitnessError tags a single witness's failure in a fan-out, so a caller
// can tell which witness failed without the whole call erroring.
type WitnessError struct {
	WitnessID string
	Err       error
}

func (e *WitnessError) Error() string { return e.WitnessID + ": " + e.Err.Error() }
func (e *WitnessError) Unwrap() error { return e.Err }

// Result is the outcome of fanning out to a set of witnesses for one entry.
type Result struct {
	Event        originals.LogEntry
	Proofs       []keys.Proof
	ThresholdMet bool
	Errors       []*WitnessError
}

// Collect fans out to services in parallel, bounded by timeout (or
// DefaultTimeout if zero), collecting each witness's result into either a
// proof or a tagged error. It never fails on an individual witness error;
// it returns a Result with both proofs and a (possibly non-empty) errors
// slice. Proofs are returned in the order services was given, for
// reproducibility, not completion order.
func Collect(entry originals.LogEntry, services []Service, threshold int, timeout time.Duration) (*Result, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	type outcome struct {
		proof *keys.Proof
		err   error
	}
	outcomes := make([]outcome, len(services))

	var wg sync.WaitGroup
	for i, svc := range services {
		wg.Add(1)
		go func(i int, svc Service) {
			defer wg.Done()
			proof, err := svc.Witness(ctx, entry)
			outcomes[i] = outcome{proof: proof, err: err}
		}(i, svc)
	}
	wg.Wait()

	result := &Result{Event: entry}
	for i, svc := range services {
		o := outcomes[i]
		if o.err != nil {
			logrus.WithError(o.err).WithField("witness", svc.ID()).Warn("witness failed to attest")
			result.Errors = append(result.Errors, &WitnessError{WitnessID: svc.ID(), Err: o.err})
			continue
		}
		if o.proof != nil {
			result.Proofs = append(result.Proofs, *o.proof)
		}
	}
	result.ThresholdMet = len(result.Proofs) >= threshold
	return result, nil
}

// AddWitnessProofs returns a copy of entry with proofs appended to its
// proof vector. It does not mutate entry.
func AddWitnessProofs(entry originals.LogEntry, proofs []keys.Proof) originals.LogEntry {
	out := entry.Clone()
	out.Proof = append(out.Proof, proofs...)
	return out
}

// IsWitnessProof reports whether p is a witness proof (carries
// witnessedAt), as opposed to an author proof.
func IsWitnessProof(p keys.Proof) bool { return keys.IsWitnessProof(p) }

// GetWitnessProofs returns the subset of entry.Proof that are witness
// proofs.
func GetWitnessProofs(entry originals.LogEntry) []keys.Proof {
	var out []keys.Proof
	for _, p := range entry.Proof {
		if IsWitnessProof(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountWitnessProofs returns len(GetWitnessProofs(entry)).
func CountWitnessProofs(entry originals.LogEntry) int {
	return len(GetWitnessProofs(entry))
}
