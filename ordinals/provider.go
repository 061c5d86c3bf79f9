// Package ordinals adapts the core to an external Bitcoin ordinals
// provider: inscription creation/lookup, the JSON/CBOR wire codec for
// inscription payloads, and did:btco binding.
package ordinals

// Inscription describes an on-chain ordinal as reported by a Provider.
type Inscription struct {
	InscriptionID string `json:"inscriptionId"`
	Txid          string `json:"txid"`
	Vout          uint32 `json:"vout"`
	Satoshi       uint64 `json:"satoshi,omitempty"`
	ContentType   string `json:"contentType,omitempty"`
	Content       []byte `json:"content,omitempty"`
}

// CreateInscriptionInput is the request shape for Provider.CreateInscription.
type CreateInscriptionInput struct {
	Content     []byte
	ContentType string
	FeeRate     float64 // sat/vByte; 0 means "use provider default"
	Metadata    map[string]any
}

// CreateInscriptionResult is the response shape for Provider.CreateInscription.
type CreateInscriptionResult struct {
	InscriptionID string
	Txid          string
	Vout          uint32
	Satoshi       uint64
}

// Provider is the external ordinals/ord-indexer collaborator.
// Only CreateInscription and GetInscription are required; the rest are
// optional capabilities a richer provider may supply.
type Provider interface {
	CreateInscription(input CreateInscriptionInput) (*CreateInscriptionResult, error)
	GetInscription(id string) (*Inscription, error)
}

// TransferProvider is an optional Provider capability for moving an
// existing inscription to a new owner.
type TransferProvider interface {
	TransferInscription(id string, toAddress string) (txid string, err error)
}

// BroadcastProvider is an optional Provider capability for broadcasting a
// raw transaction.
type BroadcastProvider interface {
	BroadcastTransaction(rawTx []byte) (txid string, err error)
}

// FeeEstimator is an optional Provider capability for querying a live
// network fee rate; FeeEstimate in adapter.go is a self-contained estimate
// that does not require this.
type FeeEstimator interface {
	EstimateFeeRate(targetBlocks int) (satPerVByte float64, err error)
}
