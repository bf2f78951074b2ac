package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Gateway define la frontera con el proveedor de IA generativa.
type Gateway interface {
	GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error)
	AnalyzeImage(ctx context.Context, imageData, mimeType, prompt string) (string, error)
	GenerateHeadline(ctx context.Context) (string, error)
}

const (
	defaultSystemInstruction = "You are a helpful AI assistant. Provide accurate, concise, and helpful responses."
	defaultImagePrompt       = "Analyze this image in detail and describe its key elements, context, and any notable aspects."
	emptyTextFallback        = "I apologize, but I couldn't generate a response. Please try again."
	emptyImageFallback       = "I couldn't analyze this image. Please try uploading a different image."

	headlinePrompt      = "Write 1 catchy headline for an AI assistant that does text generation and image analysis."
	headlineInstruction = "You write ultra-short punchy product headlines for an AI assistant website. Max 8 words. Be creative and engaging."
)

var headlines = []string{
	"Transform Ideas into Intelligent Insights",
	"Unlock the Power of AI Conversation",
	"Experience Next-Generation AI Analysis",
	"Revolutionize Your Creative Process",
	"Discover AI That Understands You",
}

var headlineFallbacks = []string{
	"Transform Ideas into Intelligent Insights",
	"Unlock the Power of AI Conversation",
	"Experience Next-Generation AI Analysis",
}

// HTTPClient implementa Gateway contra la API generateContent del proveedor.
type HTTPClient struct {
	baseURL     string
	apiKey      string
	textModel   string
	visionModel string
	client      *http.Client
	logger      *zap.Logger
}

// NewHTTPClient construye un cliente apuntando a la API del proveedor.
func NewHTTPClient(baseURL, apiKey, textModel, visionModel string, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		textModel:   textModel,
		visionModel: visionModel,
		client:      &http.Client{Timeout: 60 * time.Second},
		logger:      logger,
	}
}

// GenerateText pide una respuesta de texto. Una respuesta vacia del proveedor
// se sustituye por una disculpa fija; un error del proveedor se propaga.
func (c *HTTPClient) GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	if systemInstruction == "" {
		systemInstruction = defaultSystemInstruction
	}
	req := generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
	}
	text, err := c.generate(ctx, c.textModel, req)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	if text == "" {
		return emptyTextFallback, nil
	}
	return text, nil
}

// AnalyzeImage envia los bytes de la imagen en base64 junto con un prompt.
func (c *HTTPClient) AnalyzeImage(ctx context.Context, imageData, mimeType, prompt string) (string, error) {
	if prompt == "" {
		prompt = defaultImagePrompt
	}
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: imageData}},
			{Text: prompt},
		}}},
	}
	text, err := c.generate(ctx, c.visionModel, req)
	if err != nil {
		return "", fmt.Errorf("analyze image: %w", err)
	}
	if text == "" {
		return emptyImageFallback, nil
	}
	return text, nil
}

// GenerateHeadline pide un titular corto. Ante cualquier fallo o respuesta
// vacia cae a una lista fija en memoria; nunca devuelve error.
func (c *HTTPClient) GenerateHeadline(ctx context.Context) (string, error) {
	req := generateRequest{
		Contents:          []content{{Parts: []part{{Text: headlinePrompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: headlineInstruction}}},
	}
	text, err := c.generate(ctx, c.textModel, req)
	if err != nil {
		c.logger.Warn("headline generation failed", zap.Error(err))
		return headlineFallbacks[rand.Intn(len(headlineFallbacks))], nil
	}
	if text = strings.TrimSpace(text); text == "" {
		return headlines[rand.Intn(len(headlines))], nil
	}
	return text, nil
}

func (c *HTTPClient) generate(ctx context.Context, model string, reqBody generateRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("provider error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return "", fmt.Errorf("provider http error: status=%d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("provider api error: %s", gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"system_instruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
