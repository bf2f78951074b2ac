package ai

import "context"

// MockGateway permite tests sin llamar al proveedor real.
type MockGateway struct {
	TextResponse    string
	TextErr         error
	ImageResponse   string
	ImageErr        error
	Headline        string
	HeadlineErr     error
	TextCalls       int
	ImageCalls      int
	LastPrompt      string
	LastInstruction string
	LastImageData   string
	LastMimeType    string
}

func (m *MockGateway) GenerateText(_ context.Context, prompt, systemInstruction string) (string, error) {
	m.TextCalls++
	m.LastPrompt = prompt
	m.LastInstruction = systemInstruction
	return m.TextResponse, m.TextErr
}

func (m *MockGateway) AnalyzeImage(_ context.Context, imageData, mimeType, prompt string) (string, error) {
	m.ImageCalls++
	m.LastImageData = imageData
	m.LastMimeType = mimeType
	m.LastPrompt = prompt
	return m.ImageResponse, m.ImageErr
}

func (m *MockGateway) GenerateHeadline(_ context.Context) (string, error) {
	return m.Headline, m.HeadlineErr
}
