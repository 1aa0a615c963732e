package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/prettytext/internal/config"
)

// execute runs the root command with args and stdin, returning stdout.
// Flag variables are reset first because cobra keeps them between runs.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(t *testing.T) {
	t.Helper()
	renderExcerpt = 0
	renderResolveUploads = false
	renderEnrich = false
	renderNoSanitize = false
	emojiMax = 20
	emojiTone = 1
	emojiOutput.OutputFormat = "table"
	featuresOutput.OutputFormat = "table"
	configShowOutput.OutputFormat = "yaml"
	oneboxRefresh = false
	initMinimal = false
	initForce = false
	versionFormat = "text"
	versionShort = false
	require.NoError(t, versionCmd.Flags().Set("detailed", "false"))
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "Hello **world** :smile:\n", "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>world</strong>")
	assert.Contains(t, out, `class="emoji`)

	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nbody text\n"), 0644))
	out, err = execute(t, "", "render", path, "--excerpt", "5")
	require.NoError(t, err)
	assert.Equal(t, "Title…\n", out)
}

func TestRenderCommandSanitizes(t *testing.T) {
	input := `<div onclick="x()">raw</div>`

	out, err := execute(t, input, "render")
	require.NoError(t, err)
	assert.NotContains(t, out, "onclick")

	out, err = execute(t, input, "render", "--no-sanitize")
	require.NoError(t, err)
	assert.Contains(t, out, "onclick")
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	_, err = execute(t, "x", "render", "--resolve-uploads")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site.base_url")

	_, err = execute(t, "", "render", "../secret.md")
	assert.Error(t, err)
}

func TestSanitizeCommand(t *testing.T) {
	out, err := execute(t, `<p onclick="x()">hi</p><script>bad()</script>`, "sanitize")
	require.NoError(t, err)
	assert.Contains(t, out, "hi")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "script")
}

func TestEmojiSearchCommand(t *testing.T) {
	out, err := execute(t, "", "emoji", "search", "smil", "-n", "2", "-o", "json")
	require.NoError(t, err)

	var hits []emojiHit
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.Len(t, hits, 2)
	assert.Equal(t, "smile", hits[0].Name)
	assert.Equal(t, "smile_cat", hits[1].Name)
	assert.Contains(t, hits[0].URL, "/smile.png")

	out, err = execute(t, "", "emoji", "search", "thumbsup")
	require.NoError(t, err)
	assert.Contains(t, out, ":+1:")

	_, err = execute(t, "", "emoji", "search", "wave", "--tone", "9")
	assert.Error(t, err)
	_, err = execute(t, "", "emoji", "search", "wave", "-o", "xml")
	assert.Error(t, err)
}

func TestEmojiConvertCommands(t *testing.T) {
	img, err := execute(t, "", "emoji", "unescape", ":wave:")
	require.NoError(t, err)
	assert.Contains(t, img, "<img")
	assert.Contains(t, img, "wave.png")

	text, err := execute(t, strings.TrimSpace(img), "emoji", "escape")
	require.NoError(t, err)
	assert.Equal(t, ":wave:\n", text)
}

func TestFeaturesCommand(t *testing.T) {
	out, err := execute(t, "", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "FEATURE")
	assert.Contains(t, out, "emoji")

	out, err = execute(t, "", "features", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: emoji")
	assert.Contains(t, out, "enabled: true")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version", "--format", "json")
	require.NoError(t, err)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")

	out, err = execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "prettytext "))

	_, err = execute(t, "", "version", "--format", "xml")
	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	_, err := execute(t, "", "init", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "docs", "welcome.md"))

	data, err := os.ReadFile(filepath.Join(dir, ".prettytext.yml"))
	require.NoError(t, err)
	var written config.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.True(t, written.Site.EnableEmoji)
	assert.Equal(t, config.DefaultPort, written.Server.Port)
	assert.Equal(t, config.DefaultOneboxDelay, written.Onebox.Delay)

	_, err = execute(t, "", "init", dir)
	assert.Error(t, err, "existing configuration is kept")

	_, err = execute(t, "", "init", dir, "--force", "--minimal")
	assert.NoError(t, err)
}

func TestConfigCommands(t *testing.T) {
	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "enable_emoji: true")

	out, err = execute(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestOneboxCommands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("url") == "https://ok.example/a" {
			_, _ = w.Write([]byte(`<aside class="onebox">preview</aside>`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	viper.Set("onebox.endpoint", srv.URL)
	viper.Set("onebox.cache_path", filepath.Join(t.TempDir(), "cache", "onebox.db"))
	viper.Set("onebox.delay", "1ms")
	t.Cleanup(func() {
		viper.Set("onebox.endpoint", "")
		viper.Set("onebox.cache_path", "")
		viper.Set("onebox.delay", "0s")
	})

	out, err := execute(t, "", "onebox", "fetch", "https://ok.example/a")
	require.NoError(t, err)
	assert.Contains(t, out, "https://ok.example/a")
	assert.Contains(t, out, "ok")

	_, err = execute(t, "", "onebox", "fetch", "https://missing.example/b")
	assert.Error(t, err)

	out, err = execute(t, "", "onebox", "stats")
	require.NoError(t, err)
	assert.Equal(t, "cached: 1\nfailed: 1\n", out)

	_, err = execute(t, "", "onebox", "clear")
	require.NoError(t, err)
	out, err = execute(t, "", "onebox", "stats")
	require.NoError(t, err)
	assert.Equal(t, "cached: 0\nfailed: 0\n", out)
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"port", ValidatePort, "8080", false},
		{"port zero", ValidatePort, "0", false},
		{"port too high", ValidatePort, "70000", true},
		{"port not a number", ValidatePort, "http", true},
		{"tone", ValidateTone, "3", false},
		{"tone zero", ValidateTone, "0", true},
		{"format yaml", ValidateOutputFormat, "yaml", false},
		{"format xml", ValidateOutputFormat, "xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
