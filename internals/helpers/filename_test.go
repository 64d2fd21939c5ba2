package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateObjectNameKeepsExtension(t *testing.T) {
	name := GenerateObjectName("شهادة الميلاد.pdf")
	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension should survive: %s", name)
	assert.NotContains(t, name, " ")
}

func TestGenerateObjectNameUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateObjectName("photo.jpg")
		assert.False(t, seen[name], "duplicate object name: %s", name)
		seen[name] = true
	}
}

func TestGenerateObjectNameNoExtension(t *testing.T) {
	name := GenerateObjectName("passport")
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, ".")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b-c.1_.png", SanitizeFilename("a b-c.1؟.png"))
}
