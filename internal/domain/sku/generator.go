package sku

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	// Placeholder segmento de modelo cuando el producto no tiene modelo.
	Placeholder = "GEN"
	// ProductCodeLength caracteres hexadecimales del código de producto.
	ProductCodeLength = 8

	suffixLimit = 10000 // sufijo en [0000, 9999]
)

var (
	skuPattern         = regexp.MustCompile(`^([A-Z0-9]{3})-([A-Z0-9]{3})-([A-Z0-9]{3})-(\d{4})$`)
	productCodePattern = regexp.MustCompile(`^[A-F0-9]{8}$`)
)

// Generator produce SKUs y códigos de producto a partir de una fuente aleatoria.
// Es seguro para uso concurrente siempre que la fuente lo sea (crypto/rand.Reader lo es).
type Generator struct {
	rand io.Reader
}

// NewGenerator construye un generador. Con r nil usa crypto/rand.Reader.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var std = NewGenerator(nil)

// Prefix devuelve la parte determinista del SKU: "{categoría}-{marca}-{modelo|GEN}".
// Falla con domain.ErrInvalidInput si falta la categoría o la marca.
func Prefix(category, brand, model string) (string, error) {
	if strings.TrimSpace(category) == "" {
		return "", fmt.Errorf("sku: categoría requerida: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(brand) == "" {
		return "", fmt.Errorf("sku: marca requerida: %w", domain.ErrInvalidInput)
	}
	modelToken := Placeholder
	if strings.TrimSpace(model) != "" {
		modelToken = Token(model)
	}
	return Token(category) + "-" + Token(brand) + "-" + modelToken, nil
}

// SKU genera "{categoría}-{marca}-{modelo|GEN}-{NNNN}" con un sufijo aleatorio uniforme.
// model vacío equivale a producto sin modelo.
func (g *Generator) SKU(category, brand, model string) (string, error) {
	prefix, err := Prefix(category, brand, model)
	if err != nil {
		return "", err
	}
	n, err := rand.Int(g.rand, big.NewInt(suffixLimit))
	if err != nil {
		return "", fmt.Errorf("sku: sufijo aleatorio: %w", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, n.Int64()), nil
}

// ProductCode genera 8 caracteres hexadecimales en mayúscula, sin relación con el SKU.
func (g *Generator) ProductCode() (string, error) {
	buf := make([]byte, ProductCodeLength/2)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("sku: código de producto: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// GenerateSKU genera un SKU con el generador por defecto (crypto/rand).
func GenerateSKU(category, brand, model string) (string, error) {
	return std.SKU(category, brand, model)
}

// GenerateProductCode genera un código de producto con el generador por defecto.
func GenerateProductCode() string {
	// crypto/rand.Reader no devuelve error desde Go 1.24.
	code, _ := std.ProductCode()
	return code
}

// Parts segmentos de un SKU ya generado.
type Parts struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Suffix   string `json:"suffix"`
}

// Generic indica si el SKU se generó sin modelo.
func (p Parts) Generic() bool { return p.Model == Placeholder }

// Parse valida el formato de un SKU y lo separa en segmentos.
func Parse(code string) (Parts, error) {
	m := skuPattern.FindStringSubmatch(code)
	if m == nil {
		return Parts{}, fmt.Errorf("sku: formato inválido %q: %w", code, domain.ErrInvalidInput)
	}
	return Parts{Category: m[1], Brand: m[2], Model: m[3], Suffix: m[4]}, nil
}

// ValidProductCode indica si code tiene el formato de código de producto.
func ValidProductCode(code string) bool {
	return productCodePattern.MatchString(code)
}
