// Package slug gera slugs de URL a partir de nomes de produtos e categorias
// (ex. "Castanha-do-Pará Torrada" -> "castanha-do-para-torrada").
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// remove marcas de acentuação após decomposição NFD
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converte um nome livre em slug: minúsculas, sem acentos, e qualquer
// sequência não alfanumérica colapsada num único hífen.
func Make(name string) string {
	plain, _, err := transform.String(deaccent, name)
	if err != nil {
		plain = name
	}
	plain = strings.ToLower(plain)

	var b strings.Builder
	b.Grow(len(plain))
	lastDash := true // evita hífen inicial
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
