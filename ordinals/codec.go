package ordinals

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/onionoriginals/sdk-sub004/canon"
	"github.com/onionoriginals/sdk-sub004/oerrors"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// Encoding selects the inscription wire format.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingCBOR Encoding = "cbor"
)

// ContentType returns the MIME type set on the inscription for this
// encoding.
func (e Encoding) ContentType() string {
	if e == EncodingCBOR {
		return "application/cbor"
	}
	return "application/json"
}

// InscriptionMetadata is attached alongside a full-Original inscription.
type InscriptionMetadata struct {
	Protocol    string `json:"protocol"`
	Version     string `json:"version"`
	OriginalDID string `json:"originalDid"`
	Layer       string `json:"layer"`
}

// LogInscriptionMetadata is attached alongside an event-log-only
// inscription used for post-creation updates.
type LogInscriptionMetadata struct {
	Protocol string `json:"protocol"`
	Version  string `json:"version"`
	Events   int    `json:"events"`
}

const protocolVersion = "2.0"

// EncodeOriginal encodes original's canonical form plus protocol metadata
// for inscription, in the requested wire encoding.
func EncodeOriginal(original originals.Original, encoding Encoding) ([]byte, string, error) {
	payload := struct {
		Original originals.Original  `json:"original" cbor:"original"`
		Metadata InscriptionMetadata `json:"metadata" cbor:"metadata"`
	}{
		Original: original,
		Metadata: InscriptionMetadata{
			Protocol:    "originals",
			Version:     protocolVersion,
			OriginalDID: original.DID,
			Layer:       string(original.Layer),
		},
	}
	data, err := marshal(payload, encoding)
	return data, encoding.ContentType(), err
}

// EncodeLog encodes log plus protocol metadata for a post-creation,
// log-only inscription.
func EncodeLog(log originals.EventLog, encoding Encoding) ([]byte, string, error) {
	payload := struct {
		Log      originals.EventLog    `json:"log" cbor:"log"`
		Metadata LogInscriptionMetadata `json:"metadata" cbor:"metadata"`
	}{
		Log: log,
		Metadata: LogInscriptionMetadata{
			Protocol: "originals-log",
			Version:  protocolVersion,
			Events:   len(log.Events),
		},
	}
	data, err := marshal(payload, encoding)
	return data, encoding.ContentType(), err
}

func marshal(v any, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingCBOR:
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, oerrors.NewEncodingError(err, "encode inscription payload as CBOR")
		}
		data, err := em.Marshal(v)
		if err != nil {
			return nil, oerrors.NewEncodingError(err, "encode inscription payload as CBOR")
		}
		return data, nil
	case EncodingJSON, "":
		return canon.Canonicalize(v)
	default:
		return nil, oerrors.NewValidationError("unsupported inscription encoding %q", encoding)
	}
}
