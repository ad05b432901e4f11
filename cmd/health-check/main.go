// Package main provides a standalone health check command.
// It is intended for Docker health checks and monitoring scripts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeError   = 2
)

type healthResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	} `json:"data"`
}

func main() {
	url := flag.String("url", "http://localhost:8080/health", "health endpoint to probe")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	verbose := flag.Bool("verbose", false, "print the response body")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Get(*url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check error: %v\n", err)
		os.Exit(exitCodeError)
	}
	defer resp.Body.Close()

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fmt.Fprintf(os.Stderr, "health check error: invalid response: %v\n", err)
		os.Exit(exitCodeError)
	}

	if *verbose {
		fmt.Printf("status=%s version=%s http=%d\n", body.Data.Status, body.Data.Version, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || body.Data.Status != "healthy" {
		fmt.Fprintf(os.Stderr, "unhealthy: http=%d status=%s\n", resp.StatusCode, body.Data.Status)
		os.Exit(exitCodeFailure)
	}

	os.Exit(exitCodeSuccess)
}
