package originals

import (
	"github.com/onionoriginals/sdk-sub004/did"
	"github.com/onionoriginals/sdk-sub004/keys"
)

// PublishFunc is the caller-supplied webvh host callback required to
// migrate to the webvh layer.
type PublishFunc func(currentDID string, log EventLog) (newDID string, err error)

// InscribeFunc is the caller-supplied ordinals provider callback required
// to migrate to the btco layer.
type InscribeFunc func(original Original) (txid string, newDID string, err error)

// Migrate advances original to toLayer, appending a MigrateEvent signed by
// signer. Layers are totally ordered peer < webvh < btco; a migration is
// valid only if toLayer strictly exceeds the current layer and does not skip
// webvh (peer→btco directly is rejected), and deactivated Originals cannot
// migrate.
func Migrate(original Original, toLayer did.Layer, signer keys.Signer, publish PublishFunc, inscribe InscribeFunc) (*Original, error) {
	if original.Deactivated {
		return nil, errDeactivated("migrate: original %s is deactivated", original.DID)
	}
	if signer == nil {
		return nil, errValidation("migrate: signer must not be nil")
	}
	if err := checkLayerProgression(original.Layer, toLayer); err != nil {
		return nil, err
	}

	var newDID string
	var txid string
	var err error

	switch toLayer {
	case did.LayerWebvh:
		if publish == nil {
			return nil, errValidation("migrate: publish callback required to migrate to webvh")
		}
		newDID, err = publish(original.DID, original.Log)
		if err != nil {
			return nil, errExternal(err, "migrate: publish callback failed")
		}
	case did.LayerBtco:
		if inscribe == nil {
			return nil, errValidation("migrate: inscribe callback required to migrate to btco")
		}
		txid, newDID, err = inscribe(original)
		if err != nil {
			return nil, errExternal(err, "migrate: inscribe callback failed")
		}
	default:
		return nil, errLayer("migrate: unsupported target layer %q", toLayer)
	}

	event := MigrateEvent{
		FromLayer:  original.Layer,
		ToLayer:    toLayer,
		NewDID:     newDID,
		MigratedAt: nowISO(),
		Txid:       txid,
	}

	out := original.Clone()
	if _, err := appendSigned(&out.Log, EventMigrate, event, signer); err != nil {
		return nil, err
	}

	out.DID = newDID
	out.Layer = toLayer
	return &out, nil
}

// checkLayerProgression enforces the layer state machine: the target layer
// must strictly exceed the current one, and skipping webvh (peer→btco
// directly) is rejected even though that still satisfies "strictly
// exceeds".
func checkLayerProgression(from, to did.Layer) error {
	if to.Rank() < 0 {
		return errLayer("migrate: unknown target layer %q", to)
	}
	if to.Rank() <= from.Rank() {
		return errLayer("Cannot migrate from %s to %s", from, to)
	}
	if from == did.LayerPeer && to == did.LayerBtco {
		return errLayer("Cannot migrate from %s to %s: must pass through webvh", from, to)
	}
	return nil
}
