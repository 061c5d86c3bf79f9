package keys

import "github.com/multiformats/go-multibase"

// multibaseEncodeRaw base58btc-multibase-encodes raw bytes with no
// multicodec prefix. Signatures are multibase-encoded raw bytes without a
// multicodec prefix, unlike keys.
func multibaseEncodeRaw(raw []byte) (string, error) {
	return multibase.Encode(multibase.Base58BTC, raw)
}

// multibaseDecodeRaw is the inverse of multibaseEncodeRaw.
func multibaseDecodeRaw(s string) ([]byte, error) {
	_, data, err := multibase.Decode(s)
	return data, err
}
