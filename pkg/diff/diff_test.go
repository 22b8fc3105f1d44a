package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("SERVER DOWN\n(Click for more Info)\n")
	require.Empty(t, Unified(content, content, "golden", "rendered"))
}

func TestUnified_SingleLineChange(t *testing.T) {
	t.Parallel()

	result := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "golden.txt", "rendered")

	require.Contains(t, result, "--- golden.txt\n")
	require.Contains(t, result, "+++ rendered\n")
	require.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	require.Contains(t, result, " line1\n")
	require.Contains(t, result, "-line2\n")
	require.Contains(t, result, "+modified\n")
	require.Contains(t, result, " line3\n")
}

func TestUnified_WholeLinesOnly(t *testing.T) {
	t.Parallel()

	result := Unified([]byte("ALL GOOD\n"), []byte("ALL BAD\n"), "a", "b")
	require.Contains(t, result, "-ALL GOOD\n")
	require.Contains(t, result, "+ALL BAD\n")
}

func TestUnified_AddedLines(t *testing.T) {
	t.Parallel()

	result := Unified([]byte("a\n"), []byte("a\nb\nc\n"), "old", "new")
	require.Contains(t, result, "+b\n")
	require.Contains(t, result, "+c\n")
	require.NotContains(t, result, "-a")
}

func TestUnified_Truncates(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		expected.WriteString("old\n")
		actual.WriteString("new\n")
	}

	result := Unified([]byte(expected.String()), []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
