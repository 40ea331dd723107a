package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xlrukit/pkg/config/xconf"
	"github.com/omeyang/xlrukit/pkg/observability/xlog"
	"github.com/omeyang/xlrukit/pkg/util/xlru"
)

func TestReplay_Stdin(t *testing.T) {
	trace := `
# 容量为 2
put a 1
put b 2
get a
put c 3
get b
get c
peek a
keys
len
`
	code, out, errOut := runApp(t, trace, "replay", "--capacity", "2")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "found 1\nnot found\nfound 3\nfound 1\na c\n2\n", out)
}

func TestReplay_TraceFileAndConfig(t *testing.T) {
	config := writeTemp(t, "lru.yaml", "cache:\n  name: replay\n  capacity: 1\nlog:\n  level: debug\n  format: json\n")
	trace := writeTemp(t, "ops.txt", "put x hello world\nput y\nget x\nget y\ndel y\ndel y\n")

	code, out, errOut := runApp(t, "", "replay", "--config", config, "--trace", trace)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "not found\nfound <nil>\ndeleted\nnot found\n", out)

	// debug 级别下淘汰会写日志
	assert.Contains(t, errOut, `"msg":"evicted"`)
	assert.Contains(t, errOut, `"cache":"replay"`)
	assert.Contains(t, errOut, `"msg":"replay finished"`)
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown op", "put a 1\nfrob a\n", nil, 1, "line 2"},
		{"put without key", "put\n", nil, 1, "wrong number of arguments"},
		{"get with two keys", "get a b\n", nil, 1, "wrong number of arguments"},
		{"zero capacity", "", []string{"--capacity", "0"}, 2, "capacity"},
		{"negative capacity", "", []string{"--capacity", "-4"}, 2, "capacity"},
		{"watch without config", "", []string{"--watch"}, 2, "--config"},
		{"missing trace", "", []string{"--trace", "/nonexistent/ops.txt"}, 1, "open trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"replay"}, tt.args...)
			code, _, errOut := runApp(t, tt.stdin, args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestReplay_InvalidConfig(t *testing.T) {
	config := writeTemp(t, "lru.yaml", "log:\n  level: loud\n")
	code, _, errOut := runApp(t, "", "replay", "--config", config)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "log.level")
}

func TestReplay_WithWatch(t *testing.T) {
	config := writeTemp(t, "lru.yaml", "cache:\n  capacity: 4\n")
	code, out, errOut := runApp(t, "put a 1\nget a\n", "replay", "--config", config, "--watch")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "found 1\n", out)
}

func TestReplayer_CancelledContext(t *testing.T) {
	s := xconf.Default()
	logger, cleanup, err := newLogger(&s, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	r, err := newReplayer(&s, logger, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.close(context.Background()) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.run(ctx, strings.NewReader("get a\n")), context.Canceled)
}

func TestWatchLogLevel(t *testing.T) {
	path := writeTemp(t, "lru.yaml", "log:\n  level: info\n")
	s, err := xconf.Load(path)
	require.NoError(t, err)

	logger, cleanup, err := newLogger(s, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	w, err := watchLogLevel(context.Background(), path, logger)
	require.NoError(t, err)
	w.StartAsync()
	t.Cleanup(func() { _ = w.Stop() })

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))

	require.Eventually(t, func() bool {
		return logger.GetLevel() == xlog.LevelError
	}, 2*time.Second, 10*time.Millisecond)

	// 无效配置不改变当前级别
	require.NoError(t, os.WriteFile(filepath.Clean(path), []byte("log:\n  level: nope\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, xlog.LevelError, logger.GetLevel())
}

func TestFormatResult(t *testing.T) {
	v := "x"
	assert.Equal(t, "found x", formatResult(xlru.Found(&v)))
	assert.Equal(t, "found <nil>", formatResult(xlru.Found[*string](nil)))
	assert.Equal(t, "not found", formatResult(xlru.NotFound[*string]()))
}
