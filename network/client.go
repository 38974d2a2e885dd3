// Package network provides the HTTP plumbing shared by every upstream call.
package network

import (
	"net/http"
	"time"
)

// Client is the process-wide client used when no other is configured.
var Client = NewClient(time.Minute, false)

// NewClient builds a client with a tuned transport. With fingerprint set, TLS handshakes
// mimic a desktop browser.
func NewClient(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = newFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
