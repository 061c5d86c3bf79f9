// Package did constructs and parses the three DID schemes the Originals
// Protocol core progresses an asset through: did:peer (offline,
// self-certifying), did:webvh (web-hosted) and did:btco (Bitcoin-anchored).
package did

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/onionoriginals/sdk-sub004/canon"
	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// Layer is one of the three progressively stronger anchoring layers. Layers
// are totally ordered: Peer < Webvh < Btco.
type Layer string

const (
	LayerPeer  Layer = "peer"
	LayerWebvh Layer = "webvh"
	LayerBtco  Layer = "btco"
)

// Rank returns the total order position of l, used by the migration state
// machine to reject backward or skipped transitions.
func (l Layer) Rank() int {
	switch l {
	case LayerPeer:
		return 0
	case LayerWebvh:
		return 1
	case LayerBtco:
		return 2
	default:
		return -1
	}
}

const (
	methodPeer  = "peer"
	methodWebvh = "webvh"
	methodBtco  = "btco"
)

var didPrefixRe = regexp.MustCompile(`^did:([a-z0-9]+):(.+)$`)

// IsValidDID reports whether s has valid did:<method>:<method-specific-id>
// syntax for one of the three supported methods.
func IsValidDID(s string) bool {
	m := didPrefixRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	switch m[1] {
	case methodPeer:
		_, err := ParsePeerDID(s)
		return err == nil
	case methodWebvh:
		_, err := ParseWebvhDID(s)
		return err == nil
	case methodBtco:
		_, err := ParseBtcoDID(s)
		return err == nil
	default:
		return false
	}
}

// GetLayerFromDID infers the layer a DID belongs to from its method name.
func GetLayerFromDID(s string) (Layer, error) {
	m := didPrefixRe.FindStringSubmatch(s)
	if m == nil {
		return "", oerrors.NewValidationError("malformed DID %q", s)
	}
	switch m[1] {
	case methodPeer:
		return LayerPeer, nil
	case methodWebvh:
		return LayerWebvh, nil
	case methodBtco:
		return LayerBtco, nil
	default:
		return "", oerrors.NewValidationError("unsupported DID method %q", m[1])
	}
}

// --- did:peer ---

// CreatePeerDID derives a self-certifying did:peer from the hash of
// resources: "did:peer:0" followed by hash(resources) under §4.1.
func CreatePeerDID(resources any) (string, error) {
	h, err := canon.Hash(resources)
	if err != nil {
		return "", err
	}
	return "did:peer:0" + h, nil
}

var peerRe = regexp.MustCompile(`^did:peer:0(z[1-9A-HJ-NP-Za-km-z]+)$`)

// ParsePeerDID validates and extracts the content hash from a did:peer.
func ParsePeerDID(s string) (hash string, err error) {
	m := peerRe.FindStringSubmatch(s)
	if m == nil {
		return "", oerrors.NewValidationError("malformed did:peer %q", s)
	}
	return m[1], nil
}

// --- did:webvh ---

// CreateWebvhDID constructs "did:webvh:<url-encoded-domain>(:<path-segment>)*",
// optionally prefixed with an SCID as the first path segment. Whether the
// first segment is a SCID is an explicit parameter here, never guessed from
// its shape: a domain like "127.0.0.1:8080" url-encodes to a colon-bearing
// segment that is indistinguishable from an SCID by shape alone.
func CreateWebvhDID(domain string, scid string, pathSegments ...string) (string, error) {
	if domain == "" {
		return "", oerrors.NewValidationError("webvh domain must not be empty")
	}
	parts := []string{"did", methodWebvh, encodeDomain(domain)}
	if scid != "" {
		parts = append(parts, scid)
	}
	parts = append(parts, pathSegments...)
	return strings.Join(parts, ":"), nil
}

// WebvhID is a parsed did:webvh.
type WebvhID struct {
	Domain      string // decoded
	SCID        string // empty if this DID carries no SCID segment
	PathSegments []string
}

// ParseWebvhDID splits a did:webvh into its domain, optional SCID and
// remaining path segments. hasSCID tells the parser whether the method
// parameters for this DID declare an SCID segment is present; callers
// resolving a DID document already know this from the document's `method`
// parameter, so the parser never has to guess from segment shape.
func ParseWebvhDID(s string, hasSCID ...bool) (*WebvhID, error) {
	if !strings.HasPrefix(s, "did:webvh:") {
		return nil, oerrors.NewValidationError("malformed did:webvh %q", s)
	}
	rest := strings.TrimPrefix(s, "did:webvh:")
	if rest == "" {
		return nil, oerrors.NewValidationError("malformed did:webvh %q: empty method-specific-id", s)
	}
	segments := strings.Split(rest, ":")
	domain, err := decodeDomain(segments[0])
	if err != nil {
		return nil, err
	}
	id := &WebvhID{Domain: domain}
	remainder := segments[1:]
	if len(hasSCID) > 0 && hasSCID[0] {
		if len(remainder) == 0 {
			return nil, oerrors.NewValidationError("malformed did:webvh %q: SCID segment declared but absent", s)
		}
		id.SCID = remainder[0]
		remainder = remainder[1:]
	}
	id.PathSegments = remainder
	return id, nil
}

// ResolutionURL returns the HTTP(S) URL from which this DID's document or
// log resolves. kind must be "did.jsonld" or "did.jsonl".
func (id *WebvhID) ResolutionURL(kind string) string {
	base := "https://" + id.Domain
	if len(id.PathSegments) == 0 {
		return base + "/.well-known/" + kind
	}
	return base + "/" + strings.Join(id.PathSegments, "/") + "/" + kind
}

func encodeDomain(domain string) string {
	// did:web-style domains use ':' in place of a port-separating ':',
	// percent-encoded, and '/' joins path segments; we keep the simple
	// domain-only case (no embedded path) since paths are passed as
	// separate segments.
	return strings.ReplaceAll(domain, ":", "%3A")
}

func decodeDomain(encoded string) (string, error) {
	return strings.ReplaceAll(encoded, "%3A", ":"), nil
}

// --- did:btco ---

var btcoRe = regexp.MustCompile(`^did:btco:([0-9a-f]{64})i(\d+)$`)

// CreateBtcoDID constructs "did:btco:<txid>i<vout>".
func CreateBtcoDID(txid string, vout uint32) (string, error) {
	if !isHex64(txid) {
		return "", oerrors.NewValidationError("btco txid must be 64 lowercase hex digits, got %q", txid)
	}
	return fmt.Sprintf("did:btco:%si%d", txid, vout), nil
}

// BtcoID is a parsed did:btco.
type BtcoID struct {
	Txid string
	Vout uint32
}

// ParseBtcoDID validates and extracts the txid/vout from a did:btco.
func ParseBtcoDID(s string) (*BtcoID, error) {
	m := btcoRe.FindStringSubmatch(s)
	if m == nil {
		return nil, oerrors.NewValidationError("malformed did:btco %q", s)
	}
	vout, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return nil, oerrors.NewValidationError("malformed did:btco vout in %q", s)
	}
	return &BtcoID{Txid: m[1], Vout: uint32(vout)}, nil
}

func isHex64(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
