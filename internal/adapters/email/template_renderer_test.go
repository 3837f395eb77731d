package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/domain"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("welcome", &domain.WelcomeEmailData{
		Email:    "asha@example.com",
		Name:     "Asha",
		Role:     "member",
		SiteName: "Tech Club",
	})
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Tech Club, Asha!", subject)
	assert.Contains(t, html, "Asha")
	assert.Contains(t, html, "member")
	assert.Contains(t, text, "asha@example.com")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no-such-template", nil)
	assert.Error(t, err)
}
