package main

import (
	"context"
	"fmt"
	"net/http"
)

type command string

const (
	commandServe command = "serve"
	// commandHealthcheck probes /health of a running instance, for container health checks.
	commandHealthcheck command = "healthcheck"
)

// parseCommand defaults to serve for no or unknown arguments.
func parseCommand(args []string) command {
	if len(args) > 0 && args[0] == string(commandHealthcheck) {
		return commandHealthcheck
	}
	return commandServe
}

func runHealthcheck(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
