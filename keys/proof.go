package keys

import (
	"strings"
	"time"

	"github.com/onionoriginals/sdk-sub004/canon"
	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// Proof is a Data-Integrity-style proof embedded in a log entry. WitnessedAt is set only on witness proofs; author
// proofs leave it empty.
type Proof struct {
	Type        string `json:"type"`
	Suite       string `json:"suite"`
	Created     string `json:"created"`
	Method      string `json:"method"`
	Purpose     string `json:"purpose"`
	Value       string `json:"value"`
	WitnessedAt string `json:"witnessedAt,omitempty"`
}

const (
	ProofType              = "DataIntegrityProof"
	PurposeAssertionMethod = "assertionMethod"
)

// IsWitnessProof reports whether p carries a witnessedAt timestamp, the
// structural marker distinguishing a WitnessProof from an author proof.
func IsWitnessProof(p Proof) bool {
	return p.WitnessedAt != ""
}

// VerificationMethodDID returns the DID portion of a "<DID>#<key-id>"
// verification method string.
func VerificationMethodDID(method string) string {
	if i := strings.IndexByte(method, '#'); i >= 0 {
		return method[:i]
	}
	return method
}

// CreateProof canonicalizes data, signs it with the given key material and
// returns the resulting Proof. created defaults to now (UTC, RFC3339) when
// zero.
func CreateProof(t Type, privRaw []byte, verificationMethod string, data any, created time.Time) (*Proof, error) {
	canonical, err := canon.Canonicalize(data)
	if err != nil {
		return nil, err
	}
	sig, err := SignBytes(t, privRaw, canonical)
	if err != nil {
		return nil, err
	}
	encodedSig, err := encodeSignature(sig)
	if err != nil {
		return nil, err
	}
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return &Proof{
		Type:    ProofType,
		Suite:   t.Suite(),
		Created: created.UTC().Format(time.RFC3339),
		Method:  verificationMethod,
		Purpose: PurposeAssertionMethod,
		Value:   encodedSig,
	}, nil
}

// VerifyProof recomputes the canonical bytes of data and verifies p.Value
// against pubRaw. It is total: any decoding failure is reported as a
// verification failure, never an error.
func VerifyProof(t Type, pubRaw []byte, data any, p Proof) bool {
	canonical, err := canon.Canonicalize(data)
	if err != nil {
		return false
	}
	sig, err := decodeSignature(p.Value)
	if err != nil {
		return false
	}
	return VerifyBytes(t, pubRaw, canonical, sig)
}

func encodeSignature(sig []byte) (string, error) {
	encoded, err := multibaseEncodeRaw(sig)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "encode signature")
	}
	return encoded, nil
}

func decodeSignature(s string) ([]byte, error) {
	return multibaseDecodeRaw(s)
}
