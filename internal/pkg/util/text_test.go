package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewShortContentUnchanged(t *testing.T) {
	assert.Equal(t, "hello world", Preview("hello world", 500))
	assert.Equal(t, "", Preview("", 500))
}

func TestPreviewExactLimitUnchanged(t *testing.T) {
	content := strings.Repeat("a", 500)
	assert.Equal(t, content, Preview(content, 500))
}

func TestPreviewTruncatesOnWordBoundary(t *testing.T) {
	content := strings.Repeat("word ", 200) // 1000 chars
	got := Preview(content, 500)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "..."), " "))
	assert.LessOrEqual(t, len([]rune(got)), 503)
	// No word may be cut in half.
	assert.True(t, strings.HasSuffix(strings.TrimSuffix(got, "..."), "word"))
}

func TestPreviewSingleLongWord(t *testing.T) {
	content := strings.Repeat("a", 600)
	got := Preview(content, 500)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("a", 500)+"...", got)
}

func TestPreviewMultibyteSafe(t *testing.T) {
	content := strings.Repeat("日", 600)
	got := Preview(content, 500)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 503, len([]rune(got)))
}
