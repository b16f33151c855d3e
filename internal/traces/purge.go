// Package traces clears transient artifacts of a scan from external
// storage collaborators.
//
// The core never persists anything itself, but the platform around it
// does: recognizer caches, temporary frame files, settings entries. The
// collaborator exposes those through the Store interface and the purge
// removes every entry whose identifier carries a scan-related marker.
package traces

import (
	"errors"
	"fmt"
	"strings"
)

// Store is implemented by an external storage collaborator owning
// transient entries (cache keys, temporary file names, settings keys).
type Store interface {
	// Identifiers lists the entry identifiers currently present
	Identifiers() []string

	// Remove deletes one entry. Removing an identifier that is
	// already absent must not be an error, so purging stays
	// idempotent
	Remove(identifier string) error
}

// purgeMarkers are the substrings, matched case-insensitively, that
// mark an identifier as scan related.
var purgeMarkers = []string{"card", "scan", "ocr"}

// PurgeTransientTraces removes every marked entry from the store. The
// call is idempotent: a second purge over the same store finds nothing
// left to remove and succeeds.
//
// Removal continues past individual failures; the returned error
// aggregates every entry that could not be removed.
func PurgeTransientTraces(store Store) error {
	if store == nil {
		return nil
	}

	var failures []error
	for _, identifier := range store.Identifiers() {
		if !isScanRelated(identifier) {
			continue
		}
		if err := store.Remove(identifier); err != nil {
			failures = append(failures, fmt.Errorf("remove %q: %w", identifier, err))
		}
	}

	return errors.Join(failures...)
}

// isScanRelated reports whether the identifier contains any purge
// marker, ignoring case.
func isScanRelated(identifier string) bool {
	lowered := strings.ToLower(identifier)
	for _, marker := range purgeMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
