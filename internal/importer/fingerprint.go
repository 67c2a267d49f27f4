package importer

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/ewsmith/papergraph/internal/record"
)

// shortFingerprintLen is the hex length used in derived record ids.
const shortFingerprintLen = 8

// Fingerprint returns a stable content hash of a record's identifying
// fields (DOI, normalized title, authors). Used to detect re-imports of the
// same paper regardless of field casing or spacing.
func Fingerprint(r record.PaperRecord) string {
	h, _ := blake2b.New256(nil)

	write := func(s string) {
		h.Write([]byte(strings.Join(strings.Fields(strings.ToLower(s)), " ")))
		h.Write([]byte{0})
	}

	write(r.DOI)
	write(r.Title)
	for _, a := range r.Authors {
		write(a)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// ShortFingerprint returns the leading hex digits of Fingerprint, enough to
// disambiguate ids without dominating them.
func ShortFingerprint(r record.PaperRecord) string {
	return Fingerprint(r)[:shortFingerprintLen]
}

// FindDuplicates pairs each incoming record with an existing record sharing
// its fingerprint or DOI. Returns indexes into existing keyed by incoming
// index; records without a match are absent from the map.
func FindDuplicates(incoming, existing []record.PaperRecord) map[int]int {
	byFingerprint := make(map[string]int, len(existing))
	byDOI := make(map[string]int, len(existing))
	for i, r := range existing {
		byFingerprint[Fingerprint(r)] = i
		if r.DOI != "" {
			byDOI[strings.ToLower(r.DOI)] = i
		}
	}

	matches := make(map[int]int)
	for i, r := range incoming {
		if j, ok := byFingerprint[Fingerprint(r)]; ok {
			matches[i] = j
			continue
		}
		if r.DOI != "" {
			if j, ok := byDOI[strings.ToLower(r.DOI)]; ok {
				matches[i] = j
			}
		}
	}
	return matches
}
