package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// SignBytes signs data with the decoded private key material for the given
// type. Ed25519 signs the bytes directly; secp256k1 and P-256 sign
// SHA-256(data) with ECDSA and return the compact 64-byte r||s form.
func SignBytes(t Type, privRaw []byte, data []byte) ([]byte, error) {
	switch t {
	case Ed25519:
		if len(privRaw) != ed25519.SeedSize {
			return nil, oerrors.NewValidationError("ed25519 private key seed must be %d bytes, got %d", ed25519.SeedSize, len(privRaw))
		}
		priv := ed25519.NewKeyFromSeed(privRaw)
		return ed25519.Sign(priv, data), nil
	case Secp256k1:
		priv, _ := btcec.PrivKeyFromBytes(privRaw)
		return signECDSACompact(priv.ToECDSA(), data)
	case P256:
		priv, err := p256PrivateKeyFromBytes(privRaw)
		if err != nil {
			return nil, err
		}
		return signECDSACompact(priv, data)
	default:
		return nil, oerrors.NewValidationError("unsupported key type %q", t)
	}
}

// VerifyBytes verifies sig over data against the decoded public key
// material. It is total: malformed keys or signatures return false, never
// an error.
func VerifyBytes(t Type, pubRaw []byte, data []byte, sig []byte) bool {
	switch t {
	case Ed25519:
		if len(pubRaw) != ed25519.PublicKeySize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(pubRaw), data, sig)
	case Secp256k1:
		pub, err := btcec.ParsePubKey(pubRaw)
		if err != nil {
			return false
		}
		return verifyECDSACompact(pub.ToECDSA(), data, sig)
	case P256:
		pub, err := p256PublicKeyFromBytes(pubRaw)
		if err != nil {
			return false
		}
		return verifyECDSACompact(pub, data, sig)
	default:
		return false
	}
}

func signECDSACompact(priv *ecdsa.PrivateKey, data []byte) ([]byte, error) {
	digest := sha256.Sum256(data)
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "ecdsa sign failed")
	}
	size := (priv.Curve.Params().BitSize + 7) / 8
	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig, nil
}

func verifyECDSACompact(pub *ecdsa.PublicKey, data []byte, sig []byte) bool {
	size := (pub.Curve.Params().BitSize + 7) / 8
	if len(sig) != 2*size {
		return false
	}
	digest := sha256.Sum256(data)
	r := new(big.Int).SetBytes(sig[:size])
	s := new(big.Int).SetBytes(sig[size:])
	return ecdsa.Verify(pub, digest[:], r, s)
}

func p256PrivateKeyFromBytes(raw []byte) (*ecdsa.PrivateKey, error) {
	if len(raw) != 32 {
		return nil, oerrors.NewValidationError("P-256 private key must be 32 bytes, got %d", len(raw))
	}
	curve := elliptic.P256()
	d := new(big.Int).SetBytes(raw)
	x, y := curve.ScalarBaseMult(raw)
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}, nil
}

func p256PublicKeyFromBytes(raw []byte) (*ecdsa.PublicKey, error) {
	curve := elliptic.P256()
	x, y := elliptic.UnmarshalCompressed(curve, raw)
	if x == nil {
		return nil, oerrors.NewEncodingError(nil, "malformed P-256 public key")
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}
