// Package sku genera los códigos de producto del catálogo: el SKU legible
// CAT-MAR-MOD-NNNN y el código de producto hexadecimal de 8 caracteres.
//
// Las funciones son puras salvo por la fuente aleatoria y no guardan estado
// entre llamadas; la unicidad contra registros existentes es responsabilidad
// de quien persiste el código.
package sku

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// TokenLength longitud fija de cada segmento derivado de un nombre.
	TokenLength = 3
	// Filler relleno a la derecha cuando el nombre normalizado tiene menos de TokenLength caracteres.
	Filler = 'X'
)

// Letras sin descomposición Unicode que NFD no separa de su acento.
var ligatures = strings.NewReplacer(
	"ß", "SS", "ẞ", "SS",
	"Æ", "AE", "æ", "AE",
	"Œ", "OE", "œ", "OE",
	"Þ", "TH", "þ", "TH",
)

var strokes = map[rune]rune{
	'Ø': 'O', 'ø': 'o',
	'Ł': 'L', 'ł': 'l',
	'Đ': 'D', 'đ': 'd',
	'Ð': 'D', 'ð': 'd',
	'ı': 'i',
}

// folder construye la cadena de transliteración. transform.Chain guarda estado,
// por eso se crea una por llamada.
func folder() transform.Transformer {
	return transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if m, ok := strokes[r]; ok {
				return m
			}
			return r
		}),
		norm.NFC,
	)
}

// Fold translitera name a ASCII en mayúsculas: quita diacríticos ("Ñandú" → "NANDU"),
// expande ligaduras ("Straße" → "STRASSE") y deja intactos los demás caracteres.
func Fold(name string) string {
	s := ligatures.Replace(name)
	folded, _, err := transform.String(folder(), s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(folded)
}

// Token devuelve el segmento de 3 caracteres [A-Z0-9] que representa name.
// Toma los primeros caracteres alfanuméricos después de transliterar y rellena con
// Filler si no alcanzan: "Frenos" → "FRE", "F-150" → "F15", "A" → "AXX".
func Token(name string) string {
	var b strings.Builder
	b.Grow(TokenLength)
	for _, r := range Fold(name) {
		if b.Len() == TokenLength {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	for b.Len() < TokenLength {
		b.WriteByte(Filler)
	}
	return b.String()
}
