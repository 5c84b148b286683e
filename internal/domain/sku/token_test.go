package sku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/sku"
)

func TestToken(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Frenos", "FRE"},
		{"BREMBO", "BRE"},
		{"F150", "F15"},
		{"frenos", "FRE"},
		{"  Aceite de motor", "ACE"},
		{"F-150", "F15"},
		{"5W-30", "5W3"},
		{"Ñandú", "NAN"},
		{"Électrique", "ELE"},
		{"Über", "UBE"},
		{"Straße", "STR"},
		{"ßeta", "SSE"},
		{"Æther", "AET"},
		{"Øresund", "ORE"},
		{"Łódź", "LOD"},
		{"ﬁltro", "FIL"},
		{"ＡＢＣ", "ABC"},
		{"A", "AXX"},
		{"A B", "ABX"},
		{"!!", "XXX"},
		{"日本", "XXX"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := sku.Token(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, sku.TokenLength)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "SUSPENSION", sku.Fold("Suspensión"))
	assert.Equal(t, "STRASSE", sku.Fold("Straße"))
	assert.Equal(t, "PINON & CADENA", sku.Fold("Piñón & cadena"), "conserva espacios y signos; Token los elimina")
}
