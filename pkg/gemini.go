package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"genperm"
	"io"
	"net/http"
)

// TextGenerator is the interface the services depend on, so the Gemini
// backend can be swapped for a fake in tests.
type TextGenerator interface {
	Generate(prompt string) (string, error)
}

type geminiApiCall struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRawResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"` // C'est ici que se trouve le texte généré
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiClient calls the Gemini generateContent REST endpoint. One instance
// is shared read-only across requests; it holds no mutable state.
type GeminiClient struct {
	Host   string
	APIKey string
	Model  string
}

func NewGeminiClient() *GeminiClient {
	cfg := genperm.GetConfig().Gemini
	return &GeminiClient{
		Host:   cfg.Host,
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	}
}

// Generate sends a single prompt and returns the first candidate's text.
// Temperature is pinned to 0 to keep generated SQL deterministic.
func (slf *GeminiClient) Generate(prompt string) (string, error) {
	call := geminiApiCall{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{Temperature: 0},
	}

	data, err := json.Marshal(call)
	if err != nil {
		AssertNoError(err)
	}

	req, err := http.NewRequest(
		http.MethodPost,
		fmt.Sprintf("%s/v1beta/models/%s:generateContent", slf.Host, slf.Model),
		bytes.NewBuffer(data),
	)
	if err != nil {
		AssertNoError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", slf.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	var raw geminiRawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if raw.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", raw.Error.Code, raw.Error.Message)
	}

	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return raw.Candidates[0].Content.Parts[0].Text, nil
}
