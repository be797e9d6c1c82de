package picker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldDatePicker(t *testing.T) {
	p := FieldDatePicker{}

	r := p.Pick("")
	assert.Equal(t, Cancelled, r.Outcome)

	r = p.Pick("2024-12-31")
	assert.Equal(t, Selected, r.Outcome)
	assert.Equal(t, "2024-12-31", r.Date)

	r = p.Pick("31/12/2024")
	assert.Equal(t, Failed, r.Outcome)
	assert.Error(t, r.Reason)
}

func TestFileImagePicker(t *testing.T) {
	p := FileImagePicker{}

	r := p.Pick("")
	assert.Equal(t, Cancelled, r.Outcome)

	r = p.Pick(filepath.Join(t.TempDir(), "missing.png"))
	assert.Equal(t, Failed, r.Outcome)
	assert.Error(t, r.Reason)

	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50}, 0o644))
	r = p.Pick(path)
	assert.Equal(t, Selected, r.Outcome)
	assert.True(t, strings.HasPrefix(r.Ref, "file://"), "ref is an opaque file URI")
	assert.True(t, strings.HasSuffix(r.Ref, "pic.png"))
}
