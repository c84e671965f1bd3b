package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Services  struct {
		Database struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		} `json:"database"`
	} `json:"services"`
}

// Deploy smoke check: pings the API health endpoint and, if configured,
// the completion backend's model listing.
func main() {
	url := "http://localhost:8080/health"
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	fmt.Printf("🔍 Testing health endpoint: %s\n", url)

	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("❌ Error connecting to health endpoint: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("❌ Error reading response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("📊 Response Status: %s\n", resp.Status)

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		fmt.Printf("❌ Error parsing JSON response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("   status=%s db=%s version=%s\n", health.Status, health.Services.Database.Status, health.Version)

	if resp.StatusCode != 200 || health.Status != "ok" {
		fmt.Printf("❌ Health check failed with status: %d\n", resp.StatusCode)
		os.Exit(1)
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		modelsURL := strings.TrimRight(baseURL, "/") + "/models"
		fmt.Printf("🔍 Testing completion backend: %s\n", modelsURL)

		llmResp, err := client.Get(modelsURL)
		if err != nil {
			fmt.Printf("❌ Error connecting to completion backend: %v\n", err)
			os.Exit(1)
		}
		defer llmResp.Body.Close()

		if llmResp.StatusCode != 200 {
			fmt.Printf("❌ Completion backend returned status: %d\n", llmResp.StatusCode)
			os.Exit(1)
		}
		fmt.Println("   completion backend reachable")
	}

	fmt.Println("✅ All health checks passed")
}
