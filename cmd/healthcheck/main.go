package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	httphandler "github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/http"
)

const (
	defaultAddr  = "127.0.0.1:8080"
	requestTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	addr := normalizeAddr(os.Getenv("SHIELDMYKEYS_LISTEN_ADDR"))
	if err := check(ctx, &http.Client{Timeout: requestTimeout}, "http://"+addr); err != nil {
		slog.Error("healthcheck failed", "addr", addr, "error", err)
		os.Exit(1)
	}
}

// check requests the health endpoint under baseURL and requires a 200 with
// status "ok" in the body.
func check(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body httphandler.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode health: %w", err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}

// normalizeAddr points the check at loopback when the server binds all
// interfaces. The check runs next to the server, so loopback is reachable.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
