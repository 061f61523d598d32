// Package canned is the degraded synthesis mode used when no Gemini
// credential is configured. It returns deterministic scaffolds picked by
// keyword matching on the instruction, and simulates backend latency so the
// busy-state handling around the orchestrator is exercised the same way in
// both modes.
package canned

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vibecode-be/pkg/synth"
)

const DefaultLatency = 1500 * time.Millisecond

type Provider struct {
	latency time.Duration
}

func NewProvider() *Provider {
	return &Provider{latency: DefaultLatency}
}

// NewProviderWithLatency exists for tests that advance without sleeping.
func NewProviderWithLatency(latency time.Duration) *Provider {
	return &Provider{latency: latency}
}

func (p *Provider) Generate(ctx context.Context, req *synth.Request) (string, error) {
	select {
	case <-time.After(p.latency):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if strings.Contains(strings.ToLower(req.Instruction), "todo") {
		return todoScaffold, nil
	}
	return fmt.Sprintf(fallbackScaffold, req.Instruction), nil
}
