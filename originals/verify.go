package originals

import (
	"fmt"

	"github.com/onionoriginals/sdk-sub004/canon"
	"github.com/onionoriginals/sdk-sub004/keys"
)

// Report is the result of Verify: never thrown, always returned, collecting
// every independent violation found so a caller can diagnose multiple
// issues in a single pass.
type Report struct {
	Valid  bool
	Errors []string
}

func (r *Report) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Verify walks original's log and checks, per entry and in order:
//  1. the hash chain rule (first entry has no prev; every later entry's
//     prev equals hash of the previous entry),
//  2. that proof is non-empty,
//  3. if verifier is non-nil, that every proof verifies against the
//     entry's data,
//
// Before the entries, if the log carries a PreviousLog pointer (a chunk
// boundary), it checks that the pointer is a well-formed content hash (a
// multibase-encoded multihash). A full replay of the earlier chunk is not
// required; a malformed pointer is caught without it.
//
// Verify is total: it always returns a Report, never an error.
func Verify(original Original, verifier keys.Verifier) Report {
	report := Report{Valid: true}

	if original.Log.PreviousLog != "" {
		if _, err := canon.DecodeMultihashDigest(original.Log.PreviousLog); err != nil {
			report.fail("log: previousLog is not a well-formed content hash: %v", err)
		}
	}

	events := original.Log.Events
	for i, entry := range events {
		checkChainLink(&report, events, i)

		if len(entry.Proof) == 0 {
			report.fail("entry %d: missing proof", i)
		}

		if verifier != nil {
			for j, p := range entry.Proof {
				if !verifier.Verify(p, entry.Data) {
					report.fail("entry %d: proof %d failed verification", i, j)
				}
			}
		}
	}

	return report
}

func checkChainLink(report *Report, events []LogEntry, i int) {
	entry := events[i]
	if i == 0 {
		if entry.Prev != "" {
			report.fail("entry 0: hash chain broken: first entry must not have a prev")
		}
		return
	}

	expected, err := HashEntry(events[i-1])
	if err != nil {
		report.fail("entry %d: hash chain broken: could not hash previous entry: %v", i, err)
		return
	}
	if entry.Prev == "" || entry.Prev != expected {
		report.fail("entry %d: hash chain broken: prev does not match hash of previous entry", i)
	}
}
