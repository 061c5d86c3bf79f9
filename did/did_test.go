package did_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/sdk-sub004/did"
)

func TestCreateAndParsePeerDID(t *testing.T) {
	resources := []map[string]any{{"id": "main", "hash": "zabc"}}
	d, err := did.CreatePeerDID(resources)
	require.NoError(t, err)
	assert.Regexp(t, `^did:peer:0z`, d)
	assert.True(t, did.IsValidDID(d))

	layer, err := did.GetLayerFromDID(d)
	require.NoError(t, err)
	assert.Equal(t, did.LayerPeer, layer)
}

func TestWebvhDIDRoundTrip(t *testing.T) {
	d, err := did.CreateWebvhDID("example.com", "zQmSCID", "path1")
	require.NoError(t, err)
	assert.Equal(t, "did:webvh:example.com:zQmSCID:path1", d)

	parsed, err := did.ParseWebvhDID(d, true)
	require.NoError(t, err)
	assert.Equal(t, "example.com", parsed.Domain)
	assert.Equal(t, "zQmSCID", parsed.SCID)
	assert.Equal(t, []string{"path1"}, parsed.PathSegments)
}

func TestWebvhDomainWithColonNotMistakenForSCID(t *testing.T) {
	// 127.0.0.1 style domains are exactly the case the length/leading-char
	// heuristic gets wrong; an explicit hasSCID=false avoids it.
	d, err := did.CreateWebvhDID("127.0.0.1:8080", "")
	require.NoError(t, err)
	parsed, err := did.ParseWebvhDID(d, false)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", parsed.Domain)
	assert.Empty(t, parsed.SCID)
}

func TestResolutionURLDomainOnly(t *testing.T) {
	parsed, err := did.ParseWebvhDID("did:webvh:example.com", false)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/.well-known/did.jsonld", parsed.ResolutionURL("did.jsonld"))
	assert.Equal(t, "https://example.com/.well-known/did.jsonl", parsed.ResolutionURL("did.jsonl"))
}

func TestResolutionURLWithPath(t *testing.T) {
	parsed, err := did.ParseWebvhDID("did:webvh:example.com:zQmSCID:alice", true)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/alice/did.jsonld", parsed.ResolutionURL("did.jsonld"))
	assert.Equal(t, "https://example.com/alice/did.jsonl", parsed.ResolutionURL("did.jsonl"))
}

func TestBtcoDIDRoundTrip(t *testing.T) {
	txid := "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
	d, err := did.CreateBtcoDID(txid, 0)
	require.NoError(t, err)
	assert.Equal(t, "did:btco:"+txid+"i0", d)

	parsed, err := did.ParseBtcoDID(d)
	require.NoError(t, err)
	assert.Equal(t, txid, parsed.Txid)
	assert.Equal(t, uint32(0), parsed.Vout)
}

func TestBtcoDIDRejectsBadTxid(t *testing.T) {
	_, err := did.CreateBtcoDID("nothex", 0)
	assert.Error(t, err)

	assert.False(t, did.IsValidDID("did:btco:nothexi0"))
}
