package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/services"
)

func newTranscribeContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("audio", "note.webm")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	fw.Write([]byte("fake audio bytes"))
	w.Close()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("POST", "/api/v1/assistant/transcribe", &body)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())

	return c, recorder
}

func TestTranscribeBackendFailureMapsToFriendlyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer server.Close()

	controller := NewAssistantController(nil, services.NewLLMService(server.URL, "test-model"))

	c, recorder := newTranscribeContext(t)
	controller.Transcribe(c)

	// Transcription failures are reported in-band, never as a 5xx.
	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var resp TranscribeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Text != "" {
		t.Errorf("Expected empty text on failure, got %q", resp.Text)
	}
	if resp.Error != "Failed to transcribe audio. Please try again." {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestTranscribeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "poured footings on the north wing"})
	}))
	defer server.Close()

	controller := NewAssistantController(nil, services.NewLLMService(server.URL, "test-model"))

	c, recorder := newTranscribeContext(t)
	controller.Transcribe(c)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var resp TranscribeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Text != "poured footings on the north wing" {
		t.Errorf("Unexpected transcript: %q", resp.Text)
	}
	if resp.Error != "" {
		t.Errorf("Expected no error, got %q", resp.Error)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewAssistantController(nil, services.NewLLMService("http://unused", "test-model"))

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("POST", "/api/v1/assistant/transcribe", nil)

	controller.Transcribe(c)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing audio file, got %d", recorder.Code)
	}
}
