package skelegen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageRoundTrip(t *testing.T) {
	css := ":root {\n  --brand: #3366cc;\n}\n"
	stamp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))

	var buf bytes.Buffer
	require.NoError(t, WritePackage(&buf, NewPackage(css, "docs-site", stamp)))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "1.0", raw["version"])
	assert.Equal(t, "skelementor-css-package", raw["format"])
	assert.Equal(t, "docs-site", raw["source"])
	assert.Equal(t, "2026-03-04T04:06:07Z", raw["created_at"])
	assert.Equal(t, map[string]any{
		"encoding": "base64",
		"css":      "OnJvb3QgewogIC0tYnJhbmQ6ICMzMzY2Y2M7Cn0K",
	}, raw["payload"])

	pkg, decoded, err := ReadPackage(&buf)
	require.NoError(t, err)
	assert.Equal(t, css, decoded)
	assert.Equal(t, "docs-site", pkg.Source)
}

func TestReadPackage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `nope`},
		{"wrong format", `{"format": "zip", "payload": {"encoding": "base64", "css": ""}}`},
		{"wrong encoding", `{"format": "skelementor-css-package", "payload": {"encoding": "gzip", "css": ""}}`},
		{"bad payload", `{"format": "skelementor-css-package", "payload": {"encoding": "base64", "css": "!!!"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadPackage(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
