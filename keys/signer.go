package keys

import "time"

// Signer is the capability the core depends on to produce proofs. External custodians/KMS implementations supply this without ever
// handing private-key material to the core.
type Signer interface {
	Sign(data any) (*Proof, error)
	GetVerificationMethod() string
}

// Verifier is the capability the core depends on to check proofs. Verify is total: it returns false rather than erroring on malformed
// input.
type Verifier interface {
	Verify(proof Proof, data any) bool
}

// KeySigner is an in-process Signer backed by a key pair held in memory. It
// is the reference implementation used by tests, demos and local
// self-attesting witnesses.
type KeySigner struct {
	Type                Type
	PrivateKey          []byte // raw, decoded
	VerificationMethod  string
}

// NewKeySigner decodes pair.PrivateKey and builds a KeySigner whose
// verification method is did#keyID.
func NewKeySigner(pair *Pair, did, keyID string) (*KeySigner, error) {
	raw, err := DecodePrivateKey(pair.Type, pair.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &KeySigner{
		Type:               pair.Type,
		PrivateKey:         raw,
		VerificationMethod: did + "#" + keyID,
	}, nil
}

func (s *KeySigner) GetVerificationMethod() string { return s.VerificationMethod }

func (s *KeySigner) Sign(data any) (*Proof, error) {
	return CreateProof(s.Type, s.PrivateKey, s.VerificationMethod, data, time.Time{})
}

// KeyVerifier is a Verifier backed by a single known public key, used where
// the caller already resolved the signer's key out of band (tests, demos).
type KeyVerifier struct {
	Type      Type
	PublicKey []byte // raw, decoded
}

// NewKeyVerifier decodes the multibase-encoded public key.
func NewKeyVerifier(t Type, encodedPub string) (*KeyVerifier, error) {
	raw, err := DecodePublicKey(t, encodedPub)
	if err != nil {
		return nil, err
	}
	return &KeyVerifier{Type: t, PublicKey: raw}, nil
}

func (v *KeyVerifier) Verify(proof Proof, data any) bool {
	return VerifyProof(v.Type, v.PublicKey, data, proof)
}
