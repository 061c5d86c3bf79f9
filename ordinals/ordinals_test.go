package ordinals_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/sdk-sub004/did"
	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/ordinals"
	"github.com/onionoriginals/sdk-sub004/originals"
)

type fakeProvider struct {
	createResult *ordinals.CreateInscriptionResult
	createErr    error
	getResult    *ordinals.Inscription
	getErr       error
	lastInput    ordinals.CreateInscriptionInput
	lastGetID    string
}

func (p *fakeProvider) CreateInscription(input ordinals.CreateInscriptionInput) (*ordinals.CreateInscriptionResult, error) {
	p.lastInput = input
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.createResult, nil
}

func (p *fakeProvider) GetInscription(id string) (*ordinals.Inscription, error) {
	p.lastGetID = id
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.getResult, nil
}

func newOriginal(t *testing.T) originals.Original {
	t.Helper()
	pair, err := keys.Generate(keys.Ed25519)
	require.NoError(t, err)
	signer, err := keys.NewKeySigner(pair, "did:example:signer", "key-1")
	require.NoError(t, err)
	o, err := originals.Create([]originals.Resource{{
		ID:        "main",
		Type:      "image",
		Hash:      "zQmYtUc4iTCbbfVSDNKvtQqrfyezPPnFvE33wFmutw9PBBk",
		MediaType: "image/png",
	}}, signer, nil)
	require.NoError(t, err)
	return *o
}

func TestEncodeOriginalJSONRoundTrip(t *testing.T) {
	o := newOriginal(t)

	data, contentType, err := ordinals.EncodeOriginal(o, ordinals.EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded struct {
		Original originals.Original          `json:"original"`
		Metadata ordinals.InscriptionMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, o.DID, decoded.Original.DID)
	assert.Equal(t, "originals", decoded.Metadata.Protocol)
	assert.Equal(t, o.DID, decoded.Metadata.OriginalDID)
	assert.Equal(t, string(did.LayerPeer), decoded.Metadata.Layer)
}

func TestEncodeOriginalCBORRoundTrip(t *testing.T) {
	o := newOriginal(t)

	data, contentType, err := ordinals.EncodeOriginal(o, ordinals.EncodingCBOR)
	require.NoError(t, err)
	assert.Equal(t, "application/cbor", contentType)

	var decoded struct {
		Original originals.Original          `cbor:"original"`
		Metadata ordinals.InscriptionMetadata `cbor:"metadata"`
	}
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, o.DID, decoded.Original.DID)
	assert.Equal(t, "originals", decoded.Metadata.Protocol)
}

func TestEncodeLog(t *testing.T) {
	o := newOriginal(t)

	data, contentType, err := ordinals.EncodeLog(o.Log, ordinals.EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded struct {
		Metadata ordinals.LogInscriptionMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "originals-log", decoded.Metadata.Protocol)
	assert.Equal(t, len(o.Log.Events), decoded.Metadata.Events)
}

func TestInscribeBindsDID(t *testing.T) {
	o := newOriginal(t)
	provider := &fakeProvider{createResult: &ordinals.CreateInscriptionResult{
		InscriptionID: "a" + strings.Repeat("0", 63) + "i0",
		Txid:          strings.Repeat("a", 64),
		Vout:          0,
		Satoshi:       12345,
	}}

	insc, newDID, err := ordinals.Inscribe(provider, o, ordinals.EncodingCBOR, 5.0, nil)
	require.NoError(t, err)
	assert.Equal(t, "did:btco:"+strings.Repeat("a", 64)+"i0", newDID)
	assert.Equal(t, strings.Repeat("a", 64), insc.Txid)
	assert.Equal(t, "application/cbor", provider.lastInput.ContentType)
}

func TestInscribeProviderError(t *testing.T) {
	o := newOriginal(t)
	provider := &fakeProvider{createErr: errors.New("insufficient funds")}

	_, _, err := ordinals.Inscribe(provider, o, ordinals.EncodingJSON, 5.0, nil)
	require.Error(t, err)
}

func TestFetchByDID(t *testing.T) {
	txid := strings.Repeat("b", 64)
	provider := &fakeProvider{getResult: &ordinals.Inscription{
		InscriptionID: txid + "i2",
		Txid:          txid,
		Vout:          2,
	}}

	insc, err := ordinals.FetchByDID(provider, "did:btco:"+txid+"i2")
	require.NoError(t, err)
	assert.Equal(t, txid+"i2", provider.lastGetID)
	assert.Equal(t, uint32(2), insc.Vout)
}

func TestFetchByDIDRejectsNonBtco(t *testing.T) {
	provider := &fakeProvider{}
	_, err := ordinals.FetchByDID(provider, "did:peer:0zabc")
	require.Error(t, err)
}

func TestDIDToInscriptionID(t *testing.T) {
	txid := strings.Repeat("c", 64)
	id, err := ordinals.DIDToInscriptionID("did:btco:" + txid + "i5")
	require.NoError(t, err)
	assert.Equal(t, txid+"i5", id)

	_, err = ordinals.DIDToInscriptionID("did:btco:not-an-inscription")
	require.Error(t, err)
}

func TestParseInscriptionID(t *testing.T) {
	assert.True(t, ordinals.ParseInscriptionID(strings.Repeat("d", 64)+"i0"))
	assert.True(t, ordinals.ParseInscriptionID(strings.Repeat("d", 64)+"i42"))
	assert.False(t, ordinals.ParseInscriptionID(strings.Repeat("d", 63)+"i0"))
	assert.False(t, ordinals.ParseInscriptionID(strings.Repeat("D", 64)+"i0"))
	assert.False(t, ordinals.ParseInscriptionID(strings.Repeat("d", 64)))
}

func TestFeeEstimate(t *testing.T) {
	got := ordinals.FeeEstimate(1000, 10.0)
	want := float64(150+250+150) * 10.0
	assert.Equal(t, want, got)

	assert.Greater(t, ordinals.FeeEstimate(2000, 1.0), ordinals.FeeEstimate(1000, 1.0))
}

