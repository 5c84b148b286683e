package dto

// PreviewSKURequest datos para previsualizar un SKU sin persistirlo.
type PreviewSKURequest struct {
	Category string `json:"category" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	Model    string `json:"model"`
}

// SKUTokens segmentos del SKU.
type SKUTokens struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Suffix   string `json:"suffix"`
}

// PreviewSKUResponse SKU candidato y sus segmentos.
type PreviewSKUResponse struct {
	SKU    string    `json:"sku"`
	Tokens SKUTokens `json:"tokens"`
}

// ProductCodeResponse código de producto generado.
type ProductCodeResponse struct {
	ProductCode string `json:"product_code"`
}

// TokenResponse token normalizado de un nombre.
type TokenResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
