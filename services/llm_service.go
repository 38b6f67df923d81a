package services

import (
    "bytes"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "os"
    "time"
)

// ChatMessage is one turn sent to the completion endpoint. Content is a
// string for plain text or a slice of content parts for vision requests.
type ChatMessage struct {
    Role    string `json:"role"`
    Content any    `json:"content"`
}

// LLMService talks to an OpenAI-compatible chat completions endpoint.
type LLMService struct {
    client  *http.Client
    baseURL string
    apiKey  string
    model   string
}

func NewLLMService() *LLMService {
    baseURL := os.Getenv("OPENAI_BASE_URL")
    if baseURL == "" {
        baseURL = "https://api.openai.com/v1"
    }
    model := os.Getenv("OPENAI_MODEL")
    if model == "" {
        model = "gpt-4o-mini"
    }
    return &LLMService{
        client:  &http.Client{Timeout: 30 * time.Second},
        baseURL: baseURL,
        apiKey:  os.Getenv("OPENAI_API_KEY"),
        model:   model,
    }
}

// Complete sends the messages and returns the first choice's text. A single
// failure surfaces as an error; nothing is retried.
func (s *LLMService) Complete(messages []ChatMessage) (string, error) {
    if s.apiKey == "" {
        return "", fmt.Errorf("OPENAI_API_KEY not set")
    }

    requestBody := map[string]any{
        "model":       s.model,
        "messages":    messages,
        "temperature": 0.2,
        "max_tokens":  600,
    }
    jsonBody, err := json.Marshal(requestBody)
    if err != nil {
        return "", fmt.Errorf("failed to marshal completion payload: %w", err)
    }

    req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
    if err != nil {
        return "", fmt.Errorf("failed to create completion request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Authorization", "Bearer "+s.apiKey)

    resp, err := s.client.Do(req)
    if err != nil {
        return "", fmt.Errorf("failed to call completion endpoint: %w", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return "", fmt.Errorf("failed to read completion response: %w", err)
    }
    if resp.StatusCode != http.StatusOK {
        return "", fmt.Errorf("completion endpoint error %d: %s", resp.StatusCode, string(body))
    }

    var out struct {
        Choices []struct {
            Message struct {
                Content string `json:"content"`
            } `json:"message"`
        } `json:"choices"`
    }
    if err := json.Unmarshal(body, &out); err != nil {
        return "", fmt.Errorf("failed to parse completion JSON: %w", err)
    }
    if len(out.Choices) == 0 {
        return "", fmt.Errorf("completion endpoint returned no choices")
    }
    return out.Choices[0].Message.Content, nil
}
