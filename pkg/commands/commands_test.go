package commands

import (
	"bytes"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
)

// execute runs the command tree against a diskv journal in dir.
func execute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Setenv("MINDTRACKR_CONFIG_PATH", dir)
	t.Setenv("MINDTRACKR_PATH", filepath.Join(dir, "data"))
	t.Setenv("MINDTRACKR_BACKEND", "diskv")

	was := now
	now = func() time.Time { return time.Date(2024, time.March, 14, 9, 26, 53, 0, time.UTC) }
	t.Cleanup(func() { now = was })

	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAddListRemoveJSON(t *testing.T) {
	dir := t.TempDir()

	var added entry.Entry
	out := execute(t, dir, "add", "--json", "--mood", "relaxed", "--on", "3/10", "slow", "morning", "walk")
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, mood.Calm, added.Mood)
	assert.Equal(t, "slow morning walk", added.Text)
	assert.Equal(t, "2024-03-10", added.Date.String())
	assert.NotEmpty(t, added.ID)

	execute(t, dir, "add", "--json", "-m", "happy", "sunny lunch outside")

	var listed []entry.Entry
	out = execute(t, dir, "list", "--json", "--mood", "calm")
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, added.ID, listed[0].ID)

	var removed struct {
		Removed []string `json:"removed"`
	}
	out = execute(t, dir, "remove", "--json", added.ID, "missing")
	require.NoError(t, json.Unmarshal([]byte(out), &removed))
	assert.Equal(t, []string{added.ID}, removed.Removed)

	out = execute(t, dir, "list", "--json")
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, mood.Happy, listed[0].Mood)
}

func TestAddValidationErrorJSON(t *testing.T) {
	dir := t.TempDir()

	out := execute(t, dir, "add", "--json", "--mood", "sad", "hi")
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Journal entry must be at least 3 characters long.", got["error"])
}

func TestAddValidationOrder(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"no text no mood":     {args: []string{"add", "--json"}, want: "Please enter some text for your journal entry."},
		"short text bad mood": {args: []string{"add", "--json", "-m", "Confused", "hi"}, want: "Journal entry must be at least 3 characters long."},
		"short text no mood":  {args: []string{"add", "--json", "hi"}, want: "Journal entry must be at least 3 characters long."},
		"missing mood":        {args: []string{"add", "--json", "no mood here"}, want: "Please select a valid mood."},
		"unknown mood":        {args: []string{"add", "--json", "--mood", "Confused", "long enough"}, want: "Please select a valid mood."},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := execute(t, t.TempDir(), tc.args...)
			var got map[string]string
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.want, got["error"])
		})
	}
}

func TestEndpointPath(t *testing.T) {
	assert.Equal(t, "/mcp", endpointPath(""))
	assert.Equal(t, "/journal", endpointPath("journal"))
	assert.Equal(t, "/journal", endpointPath(" /journal "))
}

func TestListenURL(t *testing.T) {
	a := &net.TCPAddr{IP: net.IPv4zero, Port: 43210}
	assert.Equal(t, "http://127.0.0.1:43210/mcp", listenURL(a, "0.0.0.0", "/mcp", false))
	assert.Equal(t, "https://localhost:43210/mcp", listenURL(a, "localhost", "/mcp", true))
	assert.Equal(t, "http://[::1]:43210/mcp", listenURL(a, "::1", "/mcp", false))
}
