package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoSession() *Session {
	return &Session{
		Name:   "echo",
		Prompt: "> ",
		Banner: "ECHO",
		Handle: func(_ context.Context, line string, t *Term) bool {
			if line == "quit" {
				t.Println("bye")
				return true
			}
			if line == "pair" {
				next, ok := t.ReadLine("second> ")
				if ok {
					t.Printf("pair: %s\n", next)
				}
				return false
			}
			t.Printf("echo: %s\n", line)
			return false
		},
	}
}

func TestSessionRun(t *testing.T) {
	var out bytes.Buffer
	err := echoSession().Run(context.Background(), strings.NewReader("hello\n\n   \npair\nworld\nquit\nignored\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "ECHO\n\n"))
	assert.Contains(t, got, "echo: hello")
	assert.Contains(t, got, "second> pair: world")
	assert.Contains(t, got, "bye")
	assert.NotContains(t, got, "ignored")
	assert.Equal(t, 1, strings.Count(got, "echo: "))
}

func TestSessionRunEndsAtEOF(t *testing.T) {
	var out bytes.Buffer
	err := echoSession().Run(context.Background(), strings.NewReader("one\r\ntwo"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "echo: one\n")
	assert.Contains(t, out.String(), "echo: two\n")
}

func TestSessionRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := echoSession().Run(ctx, strings.NewReader("hello\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "echo:")
}
