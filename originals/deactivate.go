package originals

import "github.com/onionoriginals/sdk-sub004/keys"

// Deactivate appends a terminal DeactivateEvent, signed by signer, and sets
// Deactivated. Fails with a DeactivatedError if original is already
// deactivated; no further appends are permitted after this call succeeds.
func Deactivate(original Original, reason string, signer keys.Signer) (*Original, error) {
	if original.Deactivated {
		return nil, errDeactivated("deactivate: original %s is already deactivated", original.DID)
	}
	if signer == nil {
		return nil, errValidation("deactivate: signer must not be nil")
	}

	event := DeactivateEvent{
		DeactivatedAt: nowISO(),
		Reason:        reason,
	}

	out := original.Clone()
	if _, err := appendSigned(&out.Log, EventDeactivate, event, signer); err != nil {
		return nil, err
	}
	out.Deactivated = true
	return &out, nil
}
