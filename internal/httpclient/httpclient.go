// Package httpclient builds the HTTP clients used to talk to the
// SponsorBlock API, with a transport tuned for small JSON requests
// against a single host.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultTimeout bounds a whole request including body read.
	DefaultTimeout = 15 * time.Second

	maxIdleConns        = 20
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
	dialTimeout         = 5 * time.Second
	keepAlive           = 30 * time.Second
)

var (
	shared     *http.Client
	sharedOnce sync.Once
)

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
		ForceAttemptHTTP2:   true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// New returns a client with its own transport and the given timeout.
// A zero timeout means no deadline at all.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: newTransport(),
		Timeout:   timeout,
	}
}

// Shared returns a lazily-built client with the default timeout, reused
// across callers so connections get pooled.
func Shared() *http.Client {
	sharedOnce.Do(func() {
		shared = New(DefaultTimeout)
	})
	return shared
}
