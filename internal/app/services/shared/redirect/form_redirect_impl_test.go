package redirect

import (
	"nanomed-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormRedirect_Initiate(t *testing.T) {
	initiator := NewFormRedirect()

	t.Run("builds an auto-submitting form with the token field", func(t *testing.T) {
		payload := initiator.Initiate("https://pay.example/form", "T1")

		assert.Contains(t, payload, `action="https://pay.example/form"`)
		assert.Contains(t, payload, `name="`+constvars.WebpayTokenFormField+`"`)
		assert.Contains(t, payload, `value="T1"`)
		assert.Contains(t, payload, `method="POST"`)
		assert.Contains(t, payload, "document.forms[0].submit()")
	})

	t.Run("escapes markup in url and token", func(t *testing.T) {
		payload := initiator.Initiate(`https://pay.example/form?a="b"`, `<tok>`)

		assert.NotContains(t, payload, `"b"`)
		assert.NotContains(t, payload, "<tok>")
		assert.Contains(t, payload, "&lt;tok&gt;")
	})
}
