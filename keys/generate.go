package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// Pair is a generated key pair, multibase-encoded and ready to hand to a
// Signer implementation or persist behind external custody.
type Pair struct {
	Type       Type
	PublicKey  string // multibase-encoded, multicodec-prefixed
	PrivateKey string // multibase-encoded, multicodec-prefixed
}

// Generate creates a new key pair for the given curve. Private key material
// never leaves this call except through the returned Pair; the core does
// not retain it.
func Generate(t Type) (*Pair, error) {
	switch t {
	case Ed25519:
		return generateEd25519()
	case Secp256k1:
		return generateSecp256k1()
	case P256:
		return generateP256()
	default:
		return nil, oerrors.NewValidationError("unsupported key type %q", t)
	}
}

func generateEd25519() (*Pair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "generate ed25519 key")
	}
	pubEnc, err := EncodePublicKey(Ed25519, pub)
	if err != nil {
		return nil, err
	}
	// Encode the 32-byte seed, not the 64-byte expanded private key: the
	// seed is the minimal representation and ed25519.NewKeyFromSeed
	// reconstitutes the expanded key for signing.
	privEnc, err := EncodePrivateKey(Ed25519, priv.Seed())
	if err != nil {
		return nil, err
	}
	return &Pair{Type: Ed25519, PublicKey: pubEnc, PrivateKey: privEnc}, nil
}

func generateSecp256k1() (*Pair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "generate secp256k1 key")
	}
	pubEnc, err := EncodePublicKey(Secp256k1, priv.PubKey().SerializeCompressed())
	if err != nil {
		return nil, err
	}
	privEnc, err := EncodePrivateKey(Secp256k1, priv.Serialize())
	if err != nil {
		return nil, err
	}
	return &Pair{Type: Secp256k1, PublicKey: pubEnc, PrivateKey: privEnc}, nil
}

func generateP256() (*Pair, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "generate P-256 key")
	}
	pubBytes := elliptic.MarshalCompressed(elliptic.P256(), priv.X, priv.Y)
	pubEnc, err := EncodePublicKey(P256, pubBytes)
	if err != nil {
		return nil, err
	}
	privBytes := make([]byte, 32)
	priv.D.FillBytes(privBytes)
	privEnc, err := EncodePrivateKey(P256, privBytes)
	if err != nil {
		return nil, err
	}
	return &Pair{Type: P256, PublicKey: pubEnc, PrivateKey: privEnc}, nil
}
