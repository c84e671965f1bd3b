package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestLLMService(baseURL string) *LLMService {
	return &LLMService{
		baseURL:         baseURL,
		chatModel:       "test-model",
		transcribeModel: "test-whisper",
		client:          &http.Client{Timeout: 5 * time.Second},
		apiCalls:        make([]LLMAPICall, 0),
	}
}

func TestChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Expected model test-model, got %s", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("Unexpected messages: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hi there"}},
			},
		})
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)

	content, err := service.ChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, 0.2, 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if content != "hi there" {
		t.Errorf("Expected 'hi there', got %q", content)
	}

	calls := service.GetAPICalls()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 tracked call, got %d", len(calls))
	}
	if calls[0].Status != 200 || calls[0].Error != "" {
		t.Errorf("Unexpected tracked call: %+v", calls[0])
	}
}

func TestChatCompletionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)

	_, err := service.ChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, 0.2, 100)
	if err == nil {
		t.Fatal("Expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Expected status in error, got %v", err)
	}

	calls := service.GetAPICalls()
	if len(calls) != 1 || calls[0].Error == "" {
		t.Errorf("Expected tracked failed call, got %+v", calls)
	}
}

func TestChatCompletionNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)

	_, err := service.ChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, 0.2, 100)
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("Expected path /audio/transcriptions, got %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		if r.FormValue("model") != "test-whisper" {
			t.Errorf("Expected model test-whisper, got %s", r.FormValue("model"))
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("Expected a file part: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]string{"text": "poured the foundation today"})
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)

	text, err := service.Transcribe(context.Background(), "note.webm", strings.NewReader("fake audio bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "poured the foundation today" {
		t.Errorf("Unexpected transcript: %q", text)
	}
}

func TestTranscribeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad audio", http.StatusBadRequest)
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)

	_, err := service.Transcribe(context.Background(), "note.webm", strings.NewReader("x"))
	if err == nil {
		t.Fatal("Expected error for 400 response")
	}
}

func TestCheckBackendHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("Expected path /models, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := newTestLLMService(server.URL)
	if err := service.CheckBackendHealth(context.Background()); err != nil {
		t.Errorf("Expected healthy backend, got %v", err)
	}

	server.Close()
	if err := service.CheckBackendHealth(context.Background()); err == nil {
		t.Error("Expected error after server shutdown")
	}
}

func TestAPICallRingKeepsLast100(t *testing.T) {
	service := newTestLLMService("http://unused")

	for i := 0; i < 120; i++ {
		service.addAPICall(LLMAPICall{ID: fmt.Sprintf("call_%d", i)})
	}

	calls := service.GetAPICalls()
	if len(calls) != 100 {
		t.Fatalf("Expected 100 tracked calls, got %d", len(calls))
	}
	if calls[0].ID != "call_20" {
		t.Errorf("Expected oldest call to be call_20, got %s", calls[0].ID)
	}
	if calls[99].ID != "call_119" {
		t.Errorf("Expected newest call to be call_119, got %s", calls[99].ID)
	}

	service.ClearAPICalls()
	if len(service.GetAPICalls()) != 0 {
		t.Error("Expected empty call history after clear")
	}
}
