package directory

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"

	"directory/internal/domain/seo"
)

// numberedSlugAttempts is how many numbered suffixes are tried before
// falling back to random ones.
const numberedSlugAttempts = 10

// SlugCandidate returns the slug to try on the given attempt for a
// business name: the bare name slug first, then "-1" to "-9", then a
// random hex suffix.
func SlugCandidate(businessName string, attempt int) string {
	base := seo.NameSlug(businessName)
	switch {
	case attempt <= 0:
		return base
	case attempt < numberedSlugAttempts:
		return base + "-" + strconv.Itoa(attempt)
	default:
		return base + "-" + randomHex(2)
	}
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
