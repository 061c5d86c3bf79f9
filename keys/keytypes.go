// Package keys implements key generation, multibase/multicodec encoding,
// signing and verification for the three curves the Originals Protocol core
// supports (Ed25519, secp256k1, P-256), plus Data-Integrity proof
// construction and verification.
package keys

import (
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"

	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// Type is one of the three supported curves. It is a closed enum: callers
// must switch exhaustively.
type Type string

const (
	Ed25519   Type = "Ed25519"
	Secp256k1 Type = "secp256k1"
	P256      Type = "P-256"
)

// Suite returns the Data-Integrity cryptosuite name used when signing with
// this key type.
func (t Type) Suite() string {
	if t == Ed25519 {
		return "eddsa-jcs-2022"
	}
	return "ecdsa-jcs-2019"
}

// multicodec codes, varint-encoded per the multiformats convention rather
// than assumed to always fit a fixed two-byte prefix.
const (
	codeEd25519Pub    = 0xed
	codeEd25519Priv   = 0x1300
	codeSecp256k1Pub  = 0xe7
	codeSecp256k1Priv = 0x1301
	codeP256Pub       = 0x1200
	codeP256Priv      = 0x1306
)

func codesFor(t Type) (pub, priv uint64, err error) {
	switch t {
	case Ed25519:
		return codeEd25519Pub, codeEd25519Priv, nil
	case Secp256k1:
		return codeSecp256k1Pub, codeSecp256k1Priv, nil
	case P256:
		return codeP256Pub, codeP256Priv, nil
	default:
		return 0, 0, oerrors.NewValidationError("unsupported key type %q", t)
	}
}

// EncodePublicKey multibase(base58btc)-encodes raw with the multicodec
// prefix for t's public key code.
func EncodePublicKey(t Type, raw []byte) (string, error) {
	code, _, err := codesFor(t)
	if err != nil {
		return "", err
	}
	return encodeMulticodec(code, raw)
}

// EncodePrivateKey multibase(base58btc)-encodes raw with the multicodec
// prefix for t's private key code.
func EncodePrivateKey(t Type, raw []byte) (string, error) {
	_, code, err := codesFor(t)
	if err != nil {
		return "", err
	}
	return encodeMulticodec(code, raw)
}

func encodeMulticodec(code uint64, raw []byte) (string, error) {
	prefix := varint.ToUvarint(code)
	buf := make([]byte, 0, len(prefix)+len(raw))
	buf = append(buf, prefix...)
	buf = append(buf, raw...)
	encoded, err := multibase.Encode(multibase.Base58BTC, buf)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "encode key: multibase encode failed")
	}
	return encoded, nil
}

// DecodePublicKey multibase-decodes s, validates the multicodec prefix
// matches t's expected public key code, and returns the raw key bytes.
func DecodePublicKey(t Type, s string) ([]byte, error) {
	wantCode, _, err := codesFor(t)
	if err != nil {
		return nil, err
	}
	return decodeMulticodec(wantCode, s)
}

// DecodePrivateKey multibase-decodes s, validates the multicodec prefix
// matches t's expected private key code, and returns the raw key bytes.
func DecodePrivateKey(t Type, s string) ([]byte, error) {
	_, wantCode, err := codesFor(t)
	if err != nil {
		return nil, err
	}
	return decodeMulticodec(wantCode, s)
}

func decodeMulticodec(wantCode uint64, s string) ([]byte, error) {
	_, data, err := multibase.Decode(s)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "decode key: unrecognized multibase string")
	}
	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "decode key: malformed multicodec varint")
	}
	if code != wantCode {
		return nil, oerrors.NewEncodingError(nil, "decode key: unexpected multicodec prefix %#x (want %#x)", code, wantCode)
	}
	return data[n:], nil
}

// DetectType inspects the multicodec prefix of a multibase-encoded public
// key and reports which Type it belongs to, without the caller needing to
// already know it.
func DetectType(s string) (Type, error) {
	_, data, err := multibase.Decode(s)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "detect key type: unrecognized multibase string")
	}
	code, _, err := varint.FromUvarint(data)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "detect key type: malformed multicodec varint")
	}
	switch code {
	case codeEd25519Pub, codeEd25519Priv:
		return Ed25519, nil
	case codeSecp256k1Pub, codeSecp256k1Priv:
		return Secp256k1, nil
	case codeP256Pub, codeP256Priv:
		return P256, nil
	default:
		return "", oerrors.NewEncodingError(nil, "detect key type: unrecognized multicodec code %#x", code)
	}
}

func (t Type) String() string { return string(t) }
