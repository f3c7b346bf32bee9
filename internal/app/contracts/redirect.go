package contracts

// RedirectInitiator builds the one-time navigation payload that hands the
// browser to the external payment page. No synchronous error: navigation
// failures belong to the browser, not this service.
type RedirectInitiator interface {
	Initiate(redirectURL, token string) string
}
