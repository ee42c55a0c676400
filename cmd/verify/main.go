package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type check struct {
	Path string
	Name string
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "Base URL of the listing API")
	flag.Parse()

	checks := []check{
		{Path: "/health", Name: "Health Check Endpoint"},
		{Path: "/properties", Name: "Get All Properties"},
		{Path: "/properties/prop-1", Name: "Get Property by ID (prop-1)"},
		{Path: "/properties/nearest/5?userLat=40.7128&userLng=-74.0060", Name: "Get 5 Nearest Properties"},
	}

	client := &http.Client{Timeout: 3 * time.Second}

	fmt.Printf("Verifying listing API at %s\n\n", *baseURL)

	allPassed := true
	for _, ck := range checks {
		if err := run(client, *baseURL+ck.Path, ck.Name); err != nil {
			fmt.Printf("  FAIL  %s: %v\n", ck.Name, err)
			allPassed = false
			continue
		}
		fmt.Printf("  OK    %s\n", ck.Name)
	}

	if !allPassed {
		fmt.Println("\nSome checks failed. Is the server running?")
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed.")
}

func run(client *http.Client, url, name string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d: %.200s", resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return fmt.Errorf("response is not valid JSON")
	}

	return nil
}
