package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsRendering_ShortText(t *testing.T) {
	assert.True(t, NeedsRendering("Loading..."))
}

func TestNeedsRendering_EmptyAfterTrim(t *testing.T) {
	assert.True(t, NeedsRendering("   \n\t  "))
}

func TestNeedsRendering_FullPosting(t *testing.T) {
	posting := strings.Repeat("We are hiring a backend engineer to build scoring pipelines. ", 20)
	assert.False(t, NeedsRendering(posting))
}

func TestNeedsRendering_ExactBoundary(t *testing.T) {
	assert.True(t, NeedsRendering(strings.Repeat("a", MinStaticTextLen-1)))
	assert.False(t, NeedsRendering(strings.Repeat("a", MinStaticTextLen)))
}
