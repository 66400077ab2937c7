package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/duckmart/segmentation-service/internal/dto"
	"github.com/duckmart/segmentation-service/internal/service"
)

// apicheck exercises a running API with the example scenario payloads
// and reports the counts it got back. Exits non-zero on any failure.
func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of a running segmentation API")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	if err := checkHealth(client, *baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}

	examples := service.Examples()
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)

	failures := 0
	for _, name := range names {
		example := examples[name]
		resp, err := runScenario(client, *baseURL, example.Payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", name, err)
			failures++
			continue
		}
		fmt.Printf("OK   %s: %d users", name, resp.TotalCount)
		if len(resp.UserIDs) > 10 {
			fmt.Printf(" (first 10: %v)", resp.UserIDs[:10])
		} else if len(resp.UserIDs) > 0 {
			fmt.Printf(" (%v)", resp.UserIDs)
		}
		fmt.Println()
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scenarios failed\n", failures, len(names))
		os.Exit(1)
	}
}

func checkHealth(client *http.Client, baseURL string) error {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return fmt.Errorf("is the API server running? %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func runScenario(client *http.Client, baseURL string, payload dto.SegmentationRequest) (*dto.SegmentationResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := client.Post(baseURL+"/segment", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("status %d: %s: %s", resp.StatusCode, errResp.Error, errResp.Message)
	}

	var segResp dto.SegmentationResponse
	if err := json.NewDecoder(resp.Body).Decode(&segResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &segResp, nil
}
