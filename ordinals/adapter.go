package ordinals

import (
	"math"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/onionoriginals/sdk-sub004/did"
	"github.com/onionoriginals/sdk-sub004/oerrors"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// Inscribe builds the inscription payload for original (in encoding),
// submits it via provider, and returns the did:btco binding for the
// created inscription.
func Inscribe(provider Provider, original originals.Original, encoding Encoding, feeRate float64, metadata map[string]any) (*Inscription, string, error) {
	content, contentType, err := EncodeOriginal(original, encoding)
	if err != nil {
		return nil, "", err
	}
	result, err := provider.CreateInscription(CreateInscriptionInput{
		Content:     content,
		ContentType: contentType,
		FeeRate:     feeRate,
		Metadata:    metadata,
	})
	if err != nil {
		logrus.WithError(err).Error("ordinals provider: create inscription failed")
		return nil, "", oerrors.NewExternalError(err, "ordinals provider: create inscription failed")
	}

	newDID, err := did.CreateBtcoDID(result.Txid, result.Vout)
	if err != nil {
		return nil, "", err
	}

	return &Inscription{
		InscriptionID: result.InscriptionID,
		Txid:          result.Txid,
		Vout:          result.Vout,
		Satoshi:       result.Satoshi,
		ContentType:   contentType,
		Content:       content,
	}, newDID, nil
}

// InscribeLog builds an event-log-only inscription payload for log and
// submits it (used to anchor updates after initial creation).
func InscribeLog(provider Provider, log originals.EventLog, encoding Encoding, feeRate float64) (*Inscription, error) {
	content, contentType, err := EncodeLog(log, encoding)
	if err != nil {
		return nil, err
	}
	result, err := provider.CreateInscription(CreateInscriptionInput{
		Content:     content,
		ContentType: contentType,
		FeeRate:     feeRate,
	})
	if err != nil {
		logrus.WithError(err).Error("ordinals provider: create log inscription failed")
		return nil, oerrors.NewExternalError(err, "ordinals provider: create log inscription failed")
	}
	return &Inscription{
		InscriptionID: result.InscriptionID,
		Txid:          result.Txid,
		Vout:          result.Vout,
		Satoshi:       result.Satoshi,
		ContentType:   contentType,
		Content:       content,
	}, nil
}

// FetchByDID converts a did:btco into an inscription id and fetches it
// from provider.
func FetchByDID(provider Provider, btcoDID string) (*Inscription, error) {
	id, err := DIDToInscriptionID(btcoDID)
	if err != nil {
		return nil, err
	}
	insc, err := provider.GetInscription(id)
	if err != nil {
		logrus.WithError(err).WithField("inscriptionId", id).Error("ordinals provider: get inscription failed")
		return nil, oerrors.NewExternalError(err, "ordinals provider: get inscription failed")
	}
	return insc, nil
}

const btcoDIDPrefix = "did:btco:"

// DIDToInscriptionID strips the did:btco: prefix from a btco DID to obtain
// the provider-facing inscription id.
func DIDToInscriptionID(btcoDID string) (string, error) {
	if !strings.HasPrefix(btcoDID, btcoDIDPrefix) {
		return "", oerrors.NewValidationError("not a did:btco: %q", btcoDID)
	}
	id := strings.TrimPrefix(btcoDID, btcoDIDPrefix)
	if !InscriptionIDPattern.MatchString(id) {
		return "", oerrors.NewValidationError("malformed inscription id %q derived from %q", id, btcoDID)
	}
	return id, nil
}

// InscriptionIDPattern is the exact inscription-id shape.
var InscriptionIDPattern = regexp.MustCompile(`^[a-f0-9]{64}i\d+$`)

// ParseInscriptionID validates and reports whether id matches the required
// "<64 hex txid>i<vout>" shape.
func ParseInscriptionID(id string) bool {
	return InscriptionIDPattern.MatchString(id)
}

// commitVBytes is the informational, fixed per-commit-transaction cost
// assumed by FeeEstimate.
const commitVBytes = 150

// FeeEstimate returns an informational fee estimate for inscribing
// contentSize bytes at satPerVByte: 150 + ceil(contentSize/4) witness-discounted
// vbytes for the reveal transaction, plus 150 vbytes for the commit
// transaction. This is an estimate only; the provider's CreateInscription
// result is authoritative.
func FeeEstimate(contentSize int, satPerVByte float64) float64 {
	revealVBytes := commitVBytes + int(math.Ceil(float64(contentSize)/4))
	totalVBytes := revealVBytes + commitVBytes
	return float64(totalVBytes) * satPerVByte
}
