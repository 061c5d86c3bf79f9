package witness

import (
	"time"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// ThresholdOptions parameterizes threshold verification.
// When TrustedWitnesses is empty, every witness proof counts toward the
// threshold.
type ThresholdOptions struct {
	Threshold        int
	TrustedWitnesses []string // DID portions (before '#') of trusted witness verification methods
}

// ThresholdResult reports whether entry carries enough trusted witness
// attestations.
type ThresholdResult struct {
	Valid        bool
	WitnessCount int
	TrustedCount int
}

// VerifyWitnessProofs counts the witness proofs on entry whose method DID
// is in opts.TrustedWitnesses (or all witness proofs, if that set is
// empty), validates every counted proof's WitnessedAt is a parseable
// timestamp, and reports whether the trusted count meets the threshold.
func VerifyWitnessProofs(entry originals.LogEntry, opts ThresholdOptions) ThresholdResult {
	proofs := GetWitnessProofs(entry)
	trusted := trustedSet(opts.TrustedWitnesses)

	result := ThresholdResult{WitnessCount: len(proofs)}
	allParseable := true

	for _, p := range proofs {
		did := keys.VerificationMethodDID(p.Method)
		isTrusted := len(trusted) == 0 || trusted[did]
		if !isTrusted {
			continue
		}
		if _, err := time.Parse(time.RFC3339, p.WitnessedAt); err != nil {
			allParseable = false
			continue
		}
		result.TrustedCount++
	}

	result.Valid = result.TrustedCount >= opts.Threshold && allParseable
	return result
}

func trustedSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
