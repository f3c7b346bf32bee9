package redirect

import (
	"fmt"
	"html"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"sync"
)

var (
	formRedirectInstance contracts.RedirectInitiator
	onceFormRedirect     sync.Once
)

type formRedirect struct{}

func NewFormRedirect() contracts.RedirectInitiator {
	onceFormRedirect.Do(func() {
		formRedirectInstance = &formRedirect{}
	})
	return formRedirectInstance
}

// Initiate builds the self-submitting form Webpay expects: the browser must
// POST the token to the payment page, a plain 302 redirect is not accepted.
func (r *formRedirect) Initiate(redirectURL, token string) string {
	return fmt.Sprintf(redirectFormTemplate,
		html.EscapeString(redirectURL),
		constvars.WebpayTokenFormField,
		html.EscapeString(token),
	)
}

const redirectFormTemplate = `<!DOCTYPE html>
<html>
<head><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form action="%s" method="POST">
<input type="hidden" name="%s" value="%s" />
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`
