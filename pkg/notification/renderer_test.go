package notification

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(files map[string]string) *Renderer {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewRenderer(fsys)
}

func TestRenderer_Substitution(t *testing.T) {
	r := testRenderer(map[string]string{
		"greeting.html": "Hello {{firstName}}, welcome to {{clinicName}}",
	})

	html, err := r.Render("greeting", map[string]string{"firstName": "Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Maria, welcome to {{clinicName}}", html)
}

func TestRenderer_NoVarsLeavesPlaceholdersVerbatim(t *testing.T) {
	r := testRenderer(map[string]string{
		"greeting.html": "Hello {{firstName}}, see you at {{clinicName}}",
	})

	html, err := r.Render("greeting", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "Hello {{firstName}}, see you at {{clinicName}}", html)
}

func TestRenderer_ExtraKeysIgnored(t *testing.T) {
	r := testRenderer(map[string]string{
		"greeting.html": "Hello {{firstName}}",
	})

	html, err := r.Render("greeting", map[string]string{
		"firstName": "Maria",
		"unused":    "value",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Maria", html)
}

func TestRenderer_NoDoubleSubstitution(t *testing.T) {
	r := testRenderer(map[string]string{
		"greeting.html": "Hello {{firstName}}",
	})

	// A value containing placeholder syntax must not be re-expanded.
	html, err := r.Render("greeting", map[string]string{
		"firstName": "{{lastName}}",
		"lastName":  "Papadopoulos",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello {{lastName}}", html)
}

func TestRenderer_RepeatedPlaceholder(t *testing.T) {
	r := testRenderer(map[string]string{
		"greeting.html": "{{firstName}} and {{firstName}} again",
	})

	html, err := r.Render("greeting", map[string]string{"firstName": "Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Maria and Maria again", html)
}

func TestRenderer_TemplateMissing(t *testing.T) {
	r := testRenderer(nil)

	_, err := r.Render("nope", map[string]string{})
	assert.ErrorIs(t, err, ErrTemplateMissing)
}

func TestBuiltinRenderer_HasAllNoticeTemplates(t *testing.T) {
	r := NewBuiltinRenderer()

	for kind, n := range notices {
		_, err := r.Render(n.Template, map[string]string{})
		assert.NoError(t, err, "template for %s", kind)
	}
}
