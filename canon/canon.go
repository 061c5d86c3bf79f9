// Package canon implements deterministic canonicalization and
// content-hashing for the Originals Protocol core.
//
// Canonicalization runs structured Go values through JSON Canonicalization
// Scheme (RFC 8785, via gowebpki/jcs) rather than the source implementation's
// top-level-only key sort. JCS sorts object keys by UTF-16 code
// unit at every nesting level, including nested objects.
package canon

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/gowebpki/jcs"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"

	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// Canonicalize produces the deterministic byte sequence for value: a JSON
// encoding of value with every object's keys sorted, recursively, by
// UTF-16 code unit order (RFC 8785). Structurally equal values (same fields, same values,
// any insertion order) always canonicalize to the same bytes.
func Canonicalize(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "canonicalize: value is not JSON-serializable")
	}
	out, err := jcs.Transform(raw)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "canonicalize: JCS transform failed")
	}
	return out, nil
}

// Hash returns the multibase(base58btc)-encoded multihash (sha2-256, code
// 0x12) of value's canonical bytes. This is the only hash representation
// used on the wire by the core: self-describing and stable across
// re-serialization.
func Hash(value any) (string, error) {
	canonical, err := Canonicalize(value)
	if err != nil {
		return "", err
	}
	return HashBytes(canonical)
}

// HashBytes multihash-encodes and multibase-encodes raw bytes directly, for
// callers hashing external resource content rather than a structured value.
func HashBytes(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	mh, err := multihash.Encode(sum[:], multihash.SHA2_256)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "hash: multihash encode failed")
	}
	encoded, err := multibase.Encode(multibase.Base58BTC, mh)
	if err != nil {
		return "", oerrors.NewEncodingError(err, "hash: multibase encode failed")
	}
	return encoded, nil
}

// VerifyHash reports whether Hash(value) equals expected. It never errors:
// any canonicalization failure is reported as a non-match.
func VerifyHash(value any, expected string) bool {
	got, err := Hash(value)
	if err != nil {
		return false
	}
	return got == expected
}

// Decode multibase-decodes a string produced by Hash/HashBytes, returning the
// raw multihash bytes. Returns an EncodingError for an unrecognized prefix
// or malformed payload.
func Decode(encoded string) ([]byte, error) {
	_, data, err := multibase.Decode(encoded)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "decode: unrecognized multibase string %q", encoded)
	}
	return data, nil
}

// DecodeMultihashDigest decodes a multibase(multihash) string down to the
// raw digest bytes (stripping the multihash code/length varints), using
// proper multicodec-style varint parsing rather than a fixed-prefix-table
// lookup, which breaks silently on any multihash code it wasn't built for.
func DecodeMultihashDigest(encoded string) ([]byte, error) {
	raw, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	dec, err := multihash.Decode(raw)
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "decode: malformed multihash")
	}
	return dec.Digest, nil
}
