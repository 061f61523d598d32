package canned

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecode-be/pkg/synth"
)

func TestGenerateTodoScaffold(t *testing.T) {
	p := NewProviderWithLatency(0)

	out, err := p.Generate(context.Background(), &synth.Request{
		Instruction: "Build a TODO app please",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `id="todo-list"`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<!DOCTYPE html>"))
}

func TestGenerateFallbackEchoesInstruction(t *testing.T) {
	p := NewProviderWithLatency(0)

	out, err := p.Generate(context.Background(), &synth.Request{
		Instruction: "make a landing page for my bakery",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "make a landing page for my bakery")
	assert.NotContains(t, out, `id="todo-list"`)
}

func TestGenerateKeywordMatchIsCaseInsensitive(t *testing.T) {
	p := NewProviderWithLatency(0)

	tests := []struct {
		name        string
		instruction string
		wantTodo    bool
	}{
		{name: "lowercase", instruction: "a todo list", wantTodo: true},
		{name: "uppercase", instruction: "A TODO LIST", wantTodo: true},
		{name: "embedded", instruction: "my-todo-tracker", wantTodo: true},
		{name: "absent", instruction: "a task tracker", wantTodo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Generate(context.Background(), &synth.Request{Instruction: tt.instruction})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTodo, strings.Contains(out, `id="todo-list"`))
		})
	}
}

func TestGenerateHonorsContextCancellation(t *testing.T) {
	p := NewProviderWithLatency(10 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := p.Generate(ctx, &synth.Request{Instruction: "anything"})
	assert.Empty(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateWaitsOutConfiguredLatency(t *testing.T) {
	p := NewProviderWithLatency(30 * time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), &synth.Request{Instruction: "x"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
