package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestEventListenerLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		event  puzzle.Event
		want   []string
		silent bool
	}{
		{
			name:  "attack at info",
			level: "info",
			event: puzzle.AttackEvent{Attack: puzzle.Attack{Combos: 2, Damage: 38}},
			want:  []string{"attack", "combos=2", "damage=38"},
		},
		{
			name:  "truncation at warn",
			level: "warn",
			event: puzzle.TruncatedEvent{Cascades: 64},
			want:  []string{"cascade limit reached", "cascades=64"},
		},
		{
			name:   "phase traffic hidden at info",
			level:  "info",
			event:  puzzle.CheckEvent{Matched: true, Marked: []int{0, 1, 2}, Cascade: 1},
			silent: true,
		},
		{
			name:  "phase traffic shown at debug",
			level: "debug",
			event: puzzle.CheckEvent{Matched: true, Marked: []int{0, 1, 2}, Cascade: 1},
			want:  []string{"detection pass", "phase=CHECK", "marked=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, Options{Level: tt.level})
			require.NoError(t, err)

			EventListener(logger).HandleEvent(tt.event)

			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestEventListenerOnController(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug"})
	require.NoError(t, err)

	cfg := puzzle.DefaultConfig()
	cfg.BlockTypes = 1
	cfg.MaxCascades = 2
	c, err := puzzle.New(cfg, 1, EventListener(logger))
	require.NoError(t, err)
	require.NoError(t, c.Start())

	require.True(t, c.Grab(0))
	require.True(t, c.DragTo(1))
	ep, ok := c.Release()
	require.True(t, ok)
	require.True(t, ep.Truncated)

	out := buf.String()
	assert.Contains(t, out, "board populated")
	assert.Contains(t, out, "combo erased")
	assert.Contains(t, out, "cascade limit reached")
	assert.Contains(t, out, "damage=38")
}

func TestOpen(t *testing.T) {
	logger, closeFn, err := Open("", Options{})
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "puzzle.log")
	logger, closeFn, err = Open(path, Options{Prefix: "puzzle"})
	require.NoError(t, err)
	logger.Info("hello", "answer", 42)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "answer=42")
}
