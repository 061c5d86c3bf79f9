package witness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/oerrors"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// HTTPWitness posts the entry to a configured endpoint and reads back a
// proof.
type HTTPWitness struct {
	id       string
	endpoint string
	client   *http.Client
}

// NewHTTPWitness builds an HTTP witness posting to endpoint. client
// defaults to http.DefaultClient when nil.
func NewHTTPWitness(id, endpoint string, client *http.Client) *HTTPWitness {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPWitness{id: id, endpoint: endpoint, client: client}
}

func (w *HTTPWitness) ID() string { return w.id }

type httpWitnessRequest struct {
	RequestID   string             `json:"requestId"`
	Event       originals.LogEntry `json:"event"`
	EventHash   string             `json:"eventHash"`
	RequestedAt string             `json:"requestedAt"`
}

type httpWitnessResponse struct {
	Proof keys.Proof `json:"proof"`
}

// Witness POSTs {requestId, event, eventHash, requestedAt} to w.endpoint and
// decodes {proof} from the response body. requestId is a fresh UUID per
// call, so retries and server-side logs can be correlated to one attempt.
func (w *HTTPWitness) Witness(ctx context.Context, entry originals.LogEntry) (*keys.Proof, error) {
	eventHash, err := originals.HashEntry(entry)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(httpWitnessRequest{
		RequestID:   uuid.NewString(),
		Event:       entry,
		EventHash:   eventHash,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, oerrors.NewEncodingError(err, "http witness: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, oerrors.NewExternalError(err, "http witness: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, oerrors.NewExternalError(err, "http witness: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oerrors.NewExternalError(nil, fmt.Sprintf("http witness: unexpected status %d", resp.StatusCode))
	}

	var out httpWitnessResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, oerrors.NewEncodingError(err, "http witness: decode response")
	}
	return &out.Proof, nil
}
