package originals

import (
	"github.com/onionoriginals/sdk-sub004/keys"
)

// Update appends an UpdateEvent to original's log, merging resources by id
// and signing with signer. Fails with a DeactivatedError
// if original is already deactivated.
func Update(original Original, resources []Resource, metadata map[string]any, reason string, signer keys.Signer) (*Original, error) {
	if original.Deactivated {
		return nil, errDeactivated("update: original %s is deactivated", original.DID)
	}
	if signer == nil {
		return nil, errValidation("update: signer must not be nil")
	}

	out := original.Clone()
	mergedResources := mergeResources(out.Resources, resources)

	event := UpdateEvent{
		Resources: resources,
		Metadata:  metadata,
		UpdatedAt: nowISO(),
		Reason:    reason,
	}

	if _, err := appendSigned(&out.Log, EventUpdate, event, signer); err != nil {
		return nil, err
	}

	out.Resources = mergedResources
	return &out, nil
}

// appendSigned hashes the log's current tail, signs event, and appends the
// resulting entry to log in place.
func appendSigned(log *EventLog, t EventType, event any, signer keys.Signer) (*LogEntry, error) {
	prev, err := prevHash(*log)
	if err != nil {
		return nil, err
	}

	proof, err := signer.Sign(event)
	if err != nil {
		return nil, errExternal(err, "sign %s event failed", t)
	}

	entry := LogEntry{
		Type:  t,
		Data:  event,
		Prev:  prev,
		Proof: []Proof{*proof},
	}
	log.Events = append(log.Events, entry)
	return &log.Events[len(log.Events)-1], nil
}

// prevHash returns hash(tail(log)), or "" if the log is empty (the first
// entry of a fresh chunk has no prev).
func prevHash(log EventLog) (string, error) {
	tail, ok := log.Tail()
	if !ok {
		return "", nil
	}
	return HashEntry(tail)
}
