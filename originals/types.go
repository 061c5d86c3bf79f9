// Package originals implements the Event Log Engine: the
// append-only, hash-linked, signed provenance log for an Original asset,
// and the create/update/migrate/deactivate/verify state transitions over
// it. The package is value-oriented: every operation takes an Original by
// value (conceptually) and returns a new one; nothing is mutated in place.
package originals

import (
	"github.com/onionoriginals/sdk-sub004/did"
	"github.com/onionoriginals/sdk-sub004/keys"
)

// Proof aliases keys.Proof so callers working only with this package never
// need to import keys directly just to read a LogEntry's proof vector.
type Proof = keys.Proof

// Resource is a content-addressed attachment on an Original.
// Hash is the multibase-multihash of the external content bytes, never of
// the Resource record itself.
type Resource struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Hash      string   `json:"hash"`
	MediaType string   `json:"mediaType,omitempty"`
	URL       []string `json:"url,omitempty"`
	Size      int64    `json:"size,omitempty"`
}

// EventType identifies the kind of state transition a LogEntry records. A
// closed, exhaustive enum.
type EventType string

const (
	EventCreate     EventType = "create"
	EventUpdate     EventType = "update"
	EventMigrate    EventType = "migrate"
	EventDeactivate EventType = "deactivate"
)

// CreateEvent is the payload of the first entry in every log.
type CreateEvent struct {
	DID       string            `json:"did"`
	Layer     did.Layer         `json:"layer"`
	Resources []Resource        `json:"resources"`
	Creator   string            `json:"creator"`
	CreatedAt string            `json:"createdAt"`
	Metadata  map[string]any    `json:"metadata,omitempty"`
}

// UpdateEvent records a change to resources and/or metadata.
type UpdateEvent struct {
	Resources []Resource     `json:"resources,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	UpdatedAt string         `json:"updatedAt"`
	Reason    string         `json:"reason,omitempty"`
}

// MigrateEvent records a layer-progression transition. Txid is populated
// iff ToLayer is btco.
type MigrateEvent struct {
	FromLayer  did.Layer `json:"fromLayer"`
	ToLayer    did.Layer `json:"toLayer"`
	NewDID     string    `json:"newDid"`
	MigratedAt string    `json:"migratedAt"`
	Txid       string    `json:"txid,omitempty"`
}

// DeactivateEvent records the terminal deactivation of an Original.
type DeactivateEvent struct {
	DeactivatedAt string `json:"deactivatedAt"`
	Reason        string `json:"reason,omitempty"`
}

// LogEntry is a single signed event in the log. Data holds one
// of CreateEvent/UpdateEvent/MigrateEvent/DeactivateEvent, selected by Type.
// Prev is absent (empty string) only for the first entry of the log; a link
// to an earlier chunk is carried by EventLog.PreviousLog, not by Prev.
type LogEntry struct {
	Type  EventType `json:"type"`
	Data  any       `json:"data"`
	Prev  string    `json:"prev,omitempty"`
	Proof []Proof   `json:"proof"`
}

// EventLog is the provenance chain. PreviousLog, when set, is
// a hash pointer to an earlier chunk, enabling log chunking without
// breaking continuity.
type EventLog struct {
	Events      []LogEntry `json:"events"`
	PreviousLog string     `json:"previousLog,omitempty"`
}

// Original is the top-level asset.
type Original struct {
	DID         string    `json:"did"`
	Layer       did.Layer `json:"layer"`
	Resources   []Resource `json:"resources"`
	Log         EventLog  `json:"log"`
	Deactivated bool      `json:"deactivated"`
}

// Clone returns a deep copy of o. Operations build their result from a
// clone of the input rather than aliasing its slices, so that a caller
// holding the original Original never observes a later mutation.
func (o Original) Clone() Original {
	out := o
	out.Resources = append([]Resource(nil), o.Resources...)
	out.Log = o.Log.Clone()
	return out
}

// Clone returns a deep copy of the log.
func (l EventLog) Clone() EventLog {
	out := EventLog{PreviousLog: l.PreviousLog}
	out.Events = make([]LogEntry, len(l.Events))
	for i, e := range l.Events {
		out.Events[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the entry. Data is not mutated by any core
// operation after append, so it is shared rather than deep-copied.
func (e LogEntry) Clone() LogEntry {
	out := e
	out.Proof = append([]Proof(nil), e.Proof...)
	return out
}

// Tail returns the last entry of the log, and false if the log is empty.
func (l EventLog) Tail() (LogEntry, bool) {
	if len(l.Events) == 0 {
		return LogEntry{}, false
	}
	return l.Events[len(l.Events)-1], true
}
