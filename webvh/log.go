package webvh

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/onionoriginals/sdk-sub004/oerrors"
)

// LogEntry is one line of a webvh DID log: {versionId, versionTime,
// parameters, state, proof[]}.
type LogEntry struct {
	VersionID   string           `json:"versionId"`
	VersionTime string           `json:"versionTime"`
	Parameters  map[string]any   `json:"parameters,omitempty"`
	State       map[string]any   `json:"state"`
	Proof       []map[string]any `json:"proof"`
}

// HostingPath is the well-known path a webvh log resolves at for a
// path-based (SCID-rooted) DID.
func HostingPath(scid string) string {
	return "/.well-known/did/" + scid + "/did.jsonl"
}

// SerializeLog writes entries as JSONL: one JSON object per line, a
// trailing newline required on write.
func SerializeLog(entries []LogEntry) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return "", oerrors.NewEncodingError(err, "serialize webvh log")
		}
	}
	return buf.String(), nil
}

// ParseLog reads JSONL text into entries. A trailing newline is optional on
// read; blank lines are skipped.
func ParseLog(text string) ([]LogEntry, error) {
	var entries []LogEntry
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, oerrors.NewEncodingError(err, "parse webvh log: malformed line")
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, oerrors.NewEncodingError(err, "parse webvh log")
	}
	return entries, nil
}
