package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	require.Error(t, LoadFont("broken", []byte("not a font")))
	assert.Panics(t, func() { FontName("broken").Get() })
}
