package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("ORGCHART_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Fetching tree...")
	var tree struct {
		SnapshotID string `json:"snapshot_id"`
		Elements   []struct {
			Data struct {
				ID    string `json:"id"`
				Label string `json:"label"`
			} `json:"data"`
		} `json:"elements"`
	}
	if !sendRequest(baseURL, http.MethodGet, "/api/tree", nil, &tree) {
		fmt.Println("FAILED: Fetch tree")
		os.Exit(1)
	}
	fmt.Printf("PASSED: Fetch tree (snapshot %s, %d elements)\n", tree.SnapshotID, len(tree.Elements))

	fmt.Println("2. Selecting first node...")
	var selection map[string]string
	for _, e := range tree.Elements {
		if e.Data.ID != "" {
			selection = map[string]string{"id": e.Data.ID, "label": e.Data.Label}
			break
		}
	}
	if selection == nil {
		fmt.Println("SKIPPED: tree has no nodes")
		return
	}
	if !sendRequest(baseURL, http.MethodPost, "/api/events/node-selected", selection, nil) {
		fmt.Println("FAILED: Select node")
		os.Exit(1)
	}
	fmt.Println("PASSED: Select node")
}

func sendRequest(baseURL, method, endpoint string, payload, out interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			return false
		}
		return true
	}
	fmt.Printf("Response: %s\n", string(respBody))
	return true
}
