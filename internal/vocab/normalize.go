package vocab

import "strings"

// German articles stripped during normalization so "der Tisch" and
// "Tisch" refer to the same entry
var articles = []string{"der ", "die ", "das "}

// NormalizeWord brings a word form to its canonical comparison shape:
// lower-cased, trimmed, with a leading article removed
func NormalizeWord(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, article := range articles {
		if strings.HasPrefix(w, article) {
			w = strings.TrimSpace(strings.TrimPrefix(w, article))
			break
		}
	}
	return w
}

// SynthesizeID derives a stable identifier from a word that has no
// catalog entry. The same word text always maps to the same id, so
// enrolling an unmatched word from two surfaces cannot create two
// records. Uniqueness across near-identical words is not guaranteed.
func SynthesizeID(word string) string {
	normalized := NormalizeWord(word)
	var b strings.Builder
	b.WriteString(synthesizedPrefix)
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

const synthesizedPrefix = "temp_"

// IsSynthesizedID reports whether the id was derived from word text
// rather than taken from the catalog
func IsSynthesizedID(id string) bool {
	return strings.HasPrefix(id, synthesizedPrefix)
}
