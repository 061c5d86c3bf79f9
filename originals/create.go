package originals

import (
	"time"

	"github.com/onionoriginals/sdk-sub004/did"
	"github.com/onionoriginals/sdk-sub004/keys"
)

// Create derives a did:peer from resources, signs a CreateEvent with
// signer, and returns the resulting Original with a single-entry log.
func Create(resources []Resource, signer keys.Signer, metadata map[string]any) (*Original, error) {
	if signer == nil {
		return nil, errValidation("create: signer must not be nil")
	}
	resources = dedupeResourcesByID(resources)

	peerDID, err := did.CreatePeerDID(resources)
	if err != nil {
		return nil, err
	}

	event := CreateEvent{
		DID:       peerDID,
		Layer:     did.LayerPeer,
		Resources: resources,
		Creator:   keys.VerificationMethodDID(signer.GetVerificationMethod()),
		CreatedAt: nowISO(),
		Metadata:  metadata,
	}

	proof, err := signer.Sign(event)
	if err != nil {
		return nil, errExternal(err, "create: signer failed")
	}

	entry := LogEntry{
		Type:  EventCreate,
		Data:  event,
		Proof: []Proof{*proof},
	}

	return &Original{
		DID:       peerDID,
		Layer:     did.LayerPeer,
		Resources: resources,
		Log:       EventLog{Events: []LogEntry{entry}},
	}, nil
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
