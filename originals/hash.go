package originals

import "github.com/onionoriginals/sdk-sub004/canon"

// HashEntry returns the canonical entry hash used as the next entry's Prev
// link. The hash covers {type, data, prev, proof} verbatim, including the
// proof vector — signing itself only ever covers `data` alone (see
// keys.CreateProof), so the proof does not sign itself, but the chain hash
// does bind to it.
func HashEntry(e LogEntry) (string, error) {
	return canon.Hash(e)
}
