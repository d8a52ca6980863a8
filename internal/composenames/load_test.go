package composenames

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codalotl/lintnames/internal/qualname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDecode(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := Decode(strings.NewReader(`{
		"packages": [
			{"package": "androidx.compose.ui", "names": ["Modifier", "Modifier.Companion"]},
			{"package": "androidx.compose.runtime", "names": ["CompositionLocal.Key"]}
		]
	}`), logger)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	n, ok := c.LookupInternal("androidx/compose/ui/Modifier.Companion")
	require.True(t, ok)
	assert.Equal(t, "Companion", n.ShortName())

	assert.Contains(t, logBuf.String(), "loaded catalog")
	assert.Contains(t, logBuf.String(), "names=3")
}

func TestDecodeReportsEveryMalformedEntry(t *testing.T) {
	_, err := Decode(strings.NewReader(`{
		"packages": [
			{"package": "a..b", "names": ["X"]},
			{"package": "a.b", "names": ["Ok", "", "Outer."]}
		]
	}`), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, qualname.ErrInvalidFormat)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "packages[0]")
	assert.Contains(t, errs[1].Error(), "packages[1].names[1]")
	assert.Contains(t, errs[2].Error(), "packages[1].names[2]")
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"pkgs": []}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestDecodeRejectsDuplicates(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"packages": [{"package": "a", "names": ["B", "B"]}]}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"packages": [{"package": "kotlin", "names": ["Unit"]}]}`), 0o644))

	c, err := LoadFile(path, nil)
	require.NoError(t, err)
	_, ok := c.Lookup("kotlin.Unit")
	assert.True(t, ok)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "second document", input: `{"packages":[{"package":"a","names":["B"]}]} {"packages":[{"package":"x..y","names":["Z"]}]}`},
		{name: "junk", input: `{"packages":[{"package":"a","names":["B"]}]} trailing`},
		{name: "empty second object", input: `{"packages":[]}{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tc.input), nil)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), "unexpected data after catalog object")
		})
	}

	c, err := Decode(strings.NewReader("{\"packages\":[{\"package\":\"a\",\"names\":[\"B\"]}]}\n\n  "), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
