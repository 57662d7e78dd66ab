package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/market-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiVisionService implementa ImageClassifier.
var _ ports.ImageClassifier = (*GeminiVisionService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// minConfidence umbral bajo el cual la respuesta se trata como "sin categoría".
	minConfidence = 0.5

	// systemPrompt define el rol del modelo y el formato de salida.
	// Usar response_mime_type=application/json obliga a Gemini a devolver JSON puro,
	// eliminando la necesidad de limpiar bloques de markdown.
	systemPrompt = `Eres un clasificador de artículos de un marketplace de segunda mano.
Dada la referencia de la imagen de un artículo, devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con la siguiente estructura exacta:
{
  "category": "<categoría del artículo en una sola palabra, en minúsculas>",
  "confidence_score": <número decimal entre 0.0 y 1.0>
}

Reglas:
- category: una etiqueta corta y genérica (ej: "furniture", "electronics", "clothing").
- confidence_score: 0.9–1.0 = certeza alta, 0.7–0.89 = probable, <0.5 = no reconocible.
- Si la imagen no es interpretable, usa category "" y confidence_score 0.`
)

// GeminiVisionService adaptador que implementa ImageClassifier llamando a la
// API REST de Google Gemini. Usa únicamente net/http para no añadir
// dependencias externas. No reintenta: la política de reintento es del caller.
type GeminiVisionService struct {
	apiKey     string
	model      string
	baseURL    string // sobreescribible en tests
	httpClient *http.Client
}

// NewGeminiVisionService construye el adaptador. model suele ser
// "gemini-1.5-flash". timeout acota la llamada HTTP completa; el caller
// además acota con context.WithTimeout.
func NewGeminiVisionService(apiKey, model string, timeout time.Duration) *GeminiVisionService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GeminiVisionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text     string          `json:"text,omitempty"`
	FileData *geminiFileData `json:"file_data,omitempty"`
}

type geminiFileData struct {
	MIMEType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// classificationPayload es el JSON que esperamos recibir del modelo.
type classificationPayload struct {
	Category        string  `json:"category"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Classify envía la referencia de imagen a Gemini y devuelve la categoría.
// Todo error se traduce a uno de los fallos tipados de ports; el detalle del
// proveedor queda envuelto para el log.
func (s *GeminiVisionService) Classify(ctx context.Context, imageRef string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY no configurado", ports.ErrClassifierUnavailable)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: "Clasifica el artículo de esta imagen."},
					{FileData: &geminiFileData{MIMEType: "image/*", FileURI: imageRef}},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens:  64,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: serializar request: %v", ports.ErrClassifierUnavailable, err)
	}

	url := fmt.Sprintf(s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: crear HTTP request: %v", ports.ErrClassifierUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ports.ErrClassifierTimeout, ctx.Err())
		}
		return "", fmt.Errorf("%w: llamada HTTP fallida: %v", ports.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("%w: leer respuesta: %v", ports.ErrClassifierUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("%w: Gemini error %d: %s", ports.ErrClassifierUnavailable, errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: Gemini HTTP %d", ports.ErrClassifierUnavailable, resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("%w: respuesta Gemini no es JSON: %v", ports.ErrUnrecognizedImage, err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: Gemini devolvió respuesta vacía", ports.ErrUnrecognizedImage)
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var classification classificationPayload
	if err := json.Unmarshal([]byte(rawJSON), &classification); err != nil {
		return "", fmt.Errorf("%w: salida del modelo no es JSON válido: %v (respuesta: %s)", ports.ErrUnrecognizedImage, err, rawJSON)
	}

	category := strings.ToLower(strings.TrimSpace(classification.Category))
	if category == "" || classification.ConfidenceScore < minConfidence {
		return "", fmt.Errorf("%w: category=%q confidence=%.2f", ports.ErrNoMatch, category, classification.ConfidenceScore)
	}
	return category, nil
}
