package synth

import (
	"context"
)

// Request carries one synthesis round-trip's inputs.
// ExistingArtifact is the baseline to iterate on, never a fresh slate:
// aspects of the prior document the instruction does not mention must
// persist in the output.
type Request struct {
	Instruction      string
	ExistingArtifact string

	// VisualReferenceURL, when non-empty, is the dominant stylistic and
	// layout signal and overrides generic style defaults.
	VisualReferenceURL string
}

// Provider defines the contract for any code-synthesis backend.
// The response must be a complete, directly renderable document; partial
// diffs are not acceptable output. Implementations do not retry: every
// failure is terminal for the round-trip that produced it.
type Provider interface {
	Generate(ctx context.Context, req *Request) (string, error)
}
