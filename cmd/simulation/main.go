package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type createSessionResponse struct {
	Data struct {
		Id    string `json:"id"`
		Token string `json:"token"`
	} `json:"data"`
}

type submitPromptResponse struct {
	Data struct {
		Artifact  string `json:"artifact"`
		Succeeded bool   `json:"succeeded"`
		Turns     []struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"turns"`
	} `json:"data"`
}

type deploymentResponse struct {
	Data struct {
		Phase        string `json:"phase"`
		PublishedURL string `json:"published_url"`
	} `json:"data"`
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 3 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("Vibecode Studio Walkthrough")

	// 1. Create a session
	color.Yellow("\n1. Create session")
	resp, body, err := sendRequest("POST", "/studio/v1/session", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var session createSessionResponse
	json.Unmarshal(body, &session)
	token := session.Data.Token
	fmt.Printf("Session: %s\n", session.Data.Id)

	// 2. Submit a prompt (degraded mode answers in ~1.5s without a key)
	color.Yellow("\n2. Submit prompt: \"build a todo app\"")
	start := time.Now()
	resp, body, err = sendRequest("POST", "/studio/v1/prompt", token, map[string]string{
		"prompt": "build a todo app",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	var prompt submitPromptResponse
	json.Unmarshal(body, &prompt)
	color.Green("Status: %s (%.1fs)", resp.Status, time.Since(start).Seconds())
	fmt.Printf("Succeeded: %v, artifact: %d bytes\n", prompt.Data.Succeeded, len(prompt.Data.Artifact))
	for _, turn := range prompt.Data.Turns {
		fmt.Printf("  [%s] %s\n", turn.Role, truncate(turn.Text, 70))
	}

	// 3. Web deployment, polled until success
	color.Yellow("\n3. Web deployment")
	resp, _, err = sendRequest("POST", "/deploy/v1/web", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	for {
		time.Sleep(2 * time.Second)
		_, body, err = sendRequest("GET", "/deploy/v1/web", token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		var dep deploymentResponse
		json.Unmarshal(body, &dep)
		fmt.Printf("  phase: %s\n", dep.Data.Phase)
		if dep.Data.Phase == "success" {
			color.Green("Published at %s", dep.Data.PublishedURL)
			break
		}
		if dep.Data.Phase == "failed" {
			color.Red("Deployment failed")
			break
		}
	}

	// 4. App store submission
	color.Yellow("\n4. App store submission")
	resp, _, err = sendRequest("POST", "/deploy/v1/app-store", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	_, _, err = sendRequest("POST", "/deploy/v1/app-store/credentials", token, map[string]string{
		"access_token": "dummy",
		"key_id":       "dummy",
		"issuer_id":    "dummy",
		"private_key":  "dummy",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}

	for {
		time.Sleep(3 * time.Second)
		_, body, err = sendRequest("GET", "/deploy/v1/app-store", token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		var dep deploymentResponse
		json.Unmarshal(body, &dep)
		fmt.Printf("  phase: %s\n", dep.Data.Phase)
		if dep.Data.Phase == "success" || dep.Data.Phase == "failed" {
			break
		}
	}

	color.Cyan("\nWalkthrough complete")
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
