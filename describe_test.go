package deadline_test

import (
	"testing"

	"github.com/osmike/deadline"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDescription_StripsClosureIntroducer(t *testing.T) {
	got := deadline.NormalizeDescription("func() bool { return x == y }")
	assert.Equal(t, "x == y", got)
}

func TestNormalizeDescription_CollapsesWhitespace(t *testing.T) {
	got := deadline.NormalizeDescription("func() bool {\n\t\treturn counter.Load() ==   42\n\t}")
	assert.Equal(t, "counter.Load() == 42", got)
}

func TestNormalizeDescription_PlainTextUntouched(t *testing.T) {
	assert.Equal(t, "queue drained", deadline.NormalizeDescription("queue drained"))
	assert.Equal(t, "x == y", deadline.NormalizeDescription("  x   ==\t y "))
}

func TestNormalizeDescription_MultiStatementBodyKeptWrapped(t *testing.T) {
	got := deadline.NormalizeDescription("func() bool { n++; return n > 3 }")
	assert.Equal(t, "{ n++; return n > 3 }", got)
}

func TestNormalizeDescription_Empty(t *testing.T) {
	assert.Equal(t, "", deadline.NormalizeDescription(""))
	assert.Equal(t, "", deadline.NormalizeDescription("   \n\t"))
}
