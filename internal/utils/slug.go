package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yukikurage/task-assigner/internal/constants"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify lowercases s, strips accents and anything outside [a-z0-9_-], and joins
// words with single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(decomposed) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}

	return strings.Trim(b.String(), "-_")
}

// RandomSuffix returns n random characters from [a-z0-9].
func RandomSuffix(n int) (string, error) {
	max := big.NewInt(int64(len(slugAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random suffix: %w", err)
		}
		out[i] = slugAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// GenerateSlug returns the slugified name on the first attempt and
// "<slugified name>--<suffix>" on every later one. Names that slugify to nothing
// fall back to a fixed base.
func GenerateSlug(name string, attempt int) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = constants.FallbackSlug
	}
	if attempt == 0 {
		return base, nil
	}

	suffix, err := RandomSuffix(constants.SlugSuffixLength)
	if err != nil {
		return "", err
	}

	return base + "--" + suffix, nil
}
