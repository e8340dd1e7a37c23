package skelegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCSS(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "blocks are separated",
			src:  ":root{--gap:4px}.p-m{padding:var(--space-m)}",
			want: ":root {\n  --gap: 4px;\n}\n\n.p-m {\n  padding: var(--space-m);\n}\n",
		},
		{
			name: "whitespace is collapsed",
			src:  ".card   {\n\n   border :  1px   solid   red ;   }",
			want: ".card {\n  border: 1px solid red;\n}\n",
		},
		{
			name: "selector lists",
			src:  ".a, .b { color: red; }",
			want: ".a, .b {\n  color: red;\n}\n",
		},
		{
			name: "nested at-rules",
			src:  "@media (min-width: 100px) { .a { color: red } }",
			want: "@media (min-width: 100px) {\n  .a {\n    color: red;\n  }\n}\n",
		},
		{
			name: "commas in values",
			src:  ".t{font-size:clamp(1rem,0.8rem + 1vw,2rem);--fs:clamp(1rem,2vw,2rem)}",
			want: ".t {\n  font-size: clamp(1rem, 0.8rem + 1vw, 2rem);\n  --fs: clamp(1rem, 2vw, 2rem);\n}\n",
		},
		{
			name: "space before comma dropped",
			src:  ".t { font-family: Inter , sans-serif ; }",
			want: ".t {\n  font-family: Inter, sans-serif;\n}\n",
		},
		{
			name: "empty input",
			src:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCSS(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCSS_Idempotent(t *testing.T) {
	src := ".text-brand{color:var(--brand)}.bg-brand{background-color:var(--brand)}"
	once, err := FormatCSS(src)
	require.NoError(t, err)
	twice, err := FormatCSS(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFormatCSS_KeepsComments(t *testing.T) {
	got, err := FormatCSS("/* custom */ .a { color: red; }")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "/* custom */"))
	assert.Contains(t, got, ".a {\n  color: red;\n}\n")
}
