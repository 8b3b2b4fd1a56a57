package registry

import (
	"testing"

	"github.com/codegraph-dev/engine/graph"
	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownExtensions(t *testing.T) {
	r := Default()

	cases := map[string]string{
		"src/main.ts":    "typescript",
		"src/main.tsx":   "typescript",
		"src/main.js":    "javascript",
		"src/main.py":    "python",
		"src/main.go":    "go",
		"src/Main.java":  "java",
		"src/main.c":     "c",
		"src/main.cpp":   "cpp",
		"src/main.php":   "php",
		"src/main.rs":    "rust",
		"src/index.html": "html",
		"src/style.css":  "css",
	}

	for path, wantLang := range cases {
		cfg, ok := r.Lookup(path)
		assert.Truef(t, ok, "expected %s to resolve", path)
		if ok {
			assert.Equal(t, wantLang, cfg.Name, path)
		}
	}
}

func TestLookup_UnsupportedExtension(t *testing.T) {
	r := Default()
	_, ok := r.Lookup("README.md")
	assert.False(t, ok)
}

func TestLookup_IsCaseInsensitive(t *testing.T) {
	r := Default()
	cfg, ok := r.Lookup("src/Main.GO")
	assert.True(t, ok)
	assert.Equal(t, "go", cfg.Name)
}

func TestNew_CustomTable(t *testing.T) {
	custom := New([]graph.LanguageConfig{
		{Name: "toy", Extensions: []string{".toy"}, CaptureQuery: "()"},
	})
	cfg, ok := custom.Lookup("a.toy")
	assert.True(t, ok)
	assert.Equal(t, "toy", cfg.Name)

	_, ok = custom.Lookup("a.go")
	assert.False(t, ok)
}
