package service

import "net/http"

// HTTPClient is an interface for the http client methods used to call out to
// payment providers, satisfied by *http.Client. Timeouts and retry policy
// belong to the client supplied here; this layer performs neither.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
