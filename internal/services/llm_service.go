package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jobsight/backend/internal/logger"
)

// ChatMessage is one turn of a conversation passed to the completion backend.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatBackend is the completion-service contract the assistant pipeline
// depends on. LLMService is the production implementation; tests substitute
// a deterministic stub.
type ChatBackend interface {
	ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (string, error)
}

// LLMService talks to an OpenAI-compatible API (chat completions and audio
// transcriptions). Base URL, models and timeout come from the environment so
// the same client works against a hosted provider or a local Ollama.
type LLMService struct {
	baseURL         string
	apiKey          string
	chatModel       string
	transcribeModel string
	client          *http.Client
	apiCalls        []LLMAPICall
	callMutex       sync.RWMutex
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// LLMAPICall tracks one backend request for the admin diagnostics endpoint.
type LLMAPICall struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Endpoint  string        `json:"endpoint"`
	Model     string        `json:"model"`
	CallType  string        `json:"callType"` // "work_log_extraction", "chat", "transcription"
	Status    int           `json:"status"`
	Duration  time.Duration `json:"duration"`
	Response  string        `json:"response"`
	Error     string        `json:"error,omitempty"`
}

func NewLLMService(baseURL, chatModel string) *LLMService {
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}
	if chatModel == "" {
		chatModel = "llama3.1"
	}
	transcribeModel := os.Getenv("LLM_TRANSCRIBE_MODEL")
	if transcribeModel == "" {
		transcribeModel = "whisper-1"
	}

	timeoutStr := os.Getenv("LLM_TIMEOUT_SECONDS")
	timeout := 300 * time.Second
	if timeoutStr != "" {
		if t, err := time.ParseDuration(timeoutStr + "s"); err == nil {
			timeout = t
		}
	}

	return &LLMService{
		baseURL:         baseURL,
		apiKey:          os.Getenv("LLM_API_KEY"),
		chatModel:       chatModel,
		transcribeModel: transcribeModel,
		client:          &http.Client{Timeout: timeout},
		apiCalls:        make([]LLMAPICall, 0),
	}
}

// GetAPICalls returns all tracked LLM API calls
func (ls *LLMService) GetAPICalls() []LLMAPICall {
	ls.callMutex.RLock()
	defer ls.callMutex.RUnlock()

	calls := make([]LLMAPICall, len(ls.apiCalls))
	copy(calls, ls.apiCalls)
	return calls
}

// ClearAPICalls clears the API call history
func (ls *LLMService) ClearAPICalls() {
	ls.callMutex.Lock()
	defer ls.callMutex.Unlock()
	ls.apiCalls = make([]LLMAPICall, 0)
}

func (ls *LLMService) addAPICall(call LLMAPICall) {
	ls.callMutex.Lock()
	defer ls.callMutex.Unlock()

	// Keep only last 100 calls to prevent memory issues
	if len(ls.apiCalls) >= 100 {
		ls.apiCalls = ls.apiCalls[1:]
	}
	ls.apiCalls = append(ls.apiCalls, call)
}

func (ls *LLMService) trackAPICall(endpoint, model, callType string, status int, duration time.Duration, response, errMsg string) {
	call := LLMAPICall{
		ID:        fmt.Sprintf("llm_%d", time.Now().UnixNano()),
		Timestamp: time.Now(),
		Endpoint:  endpoint,
		Model:     model,
		CallType:  callType,
		Status:    status,
		Duration:  duration,
		Response:  response,
	}
	if errMsg != "" {
		call.Error = errMsg
	}
	ls.addAPICall(call)
}

// ChatCompletion sends the conversation to the completion backend and returns
// the assistant message content.
func (ls *LLMService) ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	return ls.chatCompletionTyped(ctx, messages, temperature, maxTokens, "chat")
}

// ChatCompletionTyped is ChatCompletion with a call-type label for the
// diagnostics ring.
func (ls *LLMService) ChatCompletionTyped(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int, callType string) (string, error) {
	return ls.chatCompletionTyped(ctx, messages, temperature, maxTokens, callType)
}

func (ls *LLMService) chatCompletionTyped(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int, callType string) (string, error) {
	startTime := time.Now()

	request := chatCompletionRequest{
		Model:       ls.chatModel,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, 0, time.Since(startTime), "", fmt.Sprintf("failed to marshal request: %v", err))
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", ls.baseURL)
	logger.WithLLM(callType).Debugf("Making LLM request to %s with %d messages", url, len(messages))

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, 0, time.Since(startTime), "", fmt.Sprintf("failed to create request: %v", err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if ls.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+ls.apiKey)
	}

	resp, err := ls.client.Do(req)
	elapsed := time.Since(startTime)

	if err != nil {
		logger.WithLLM(callType).Errorf("LLM request failed after %v: %v", elapsed, err)
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, 0, elapsed, "", fmt.Sprintf("HTTP request failed: %v", err))
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBodyBytes, _ := io.ReadAll(resp.Body)
		logger.WithLLM(callType).Errorf("completion API returned status %d, body: %s", resp.StatusCode, string(respBodyBytes))
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, resp.StatusCode, elapsed, "", fmt.Sprintf("completion API returned status %d", resp.StatusCode))
		return "", fmt.Errorf("completion API returned status %d, body: %s", resp.StatusCode, string(respBodyBytes))
	}

	var completionResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, resp.StatusCode, elapsed, "", fmt.Sprintf("failed to decode completion response: %v", err))
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completionResp.Choices) == 0 {
		ls.trackAPICall("/chat/completions", ls.chatModel, callType, resp.StatusCode, elapsed, "", "completion API returned no choices")
		return "", fmt.Errorf("completion API returned no choices")
	}

	content := completionResp.Choices[0].Message.Content
	ls.trackAPICall("/chat/completions", ls.chatModel, callType, resp.StatusCode, elapsed, content, "")

	return content, nil
}

// Transcribe sends audio to the transcription endpoint and returns the text.
func (ls *LLMService) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	startTime := time.Now()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return "", fmt.Errorf("failed to copy audio: %w", err)
	}
	w.WriteField("model", ls.transcribeModel)
	w.Close()

	url := fmt.Sprintf("%s/audio/transcriptions", ls.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &b)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if ls.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+ls.apiKey)
	}

	resp, err := ls.client.Do(req)
	elapsed := time.Since(startTime)

	if err != nil {
		logger.WithLLM("transcription").Errorf("transcription request failed after %v: %v", elapsed, err)
		ls.trackAPICall("/audio/transcriptions", ls.transcribeModel, "transcription", 0, elapsed, "", fmt.Sprintf("HTTP request failed: %v", err))
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBodyBytes, _ := io.ReadAll(resp.Body)
		ls.trackAPICall("/audio/transcriptions", ls.transcribeModel, "transcription", resp.StatusCode, elapsed, "", fmt.Sprintf("transcription API returned status %d", resp.StatusCode))
		return "", fmt.Errorf("transcription API returned status %d, body: %s", resp.StatusCode, string(respBodyBytes))
	}

	var transcriptResp transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcriptResp); err != nil {
		ls.trackAPICall("/audio/transcriptions", ls.transcribeModel, "transcription", resp.StatusCode, elapsed, "", fmt.Sprintf("failed to decode transcription response: %v", err))
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	ls.trackAPICall("/audio/transcriptions", ls.transcribeModel, "transcription", resp.StatusCode, elapsed, transcriptResp.Text, "")

	return transcriptResp.Text, nil
}

// CheckBackendHealth verifies the completion backend is reachable
func (ls *LLMService) CheckBackendHealth(ctx context.Context) error {
	url := fmt.Sprintf("%s/models", ls.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if ls.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+ls.apiKey)
	}

	resp, err := ls.client.Do(req)
	if err != nil {
		return fmt.Errorf("completion backend not available: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("completion backend returned status %d", resp.StatusCode)
	}

	return nil
}
