// Package sponsorblock is a client for the SponsorBlock API
// (https://sponsor.ajay.app). It fetches, submits and votes on skip
// segments and exposes the user and leaderboard endpoints.
//
// All operations are synchronous: one call, one network round trip, no
// retries. Slow-changing reads are served from a small in-memory TTL
// cache owned by the client.
package sponsorblock

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wasi-master/gosponsorblock/internal/httpclient"
	"github.com/wasi-master/gosponsorblock/internal/logger"
	"github.com/wasi-master/gosponsorblock/internal/version"
	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock/types"
)

const (
	// DefaultBaseURL is the public SponsorBlock server.
	DefaultBaseURL = "https://sponsor.ajay.app"

	// UserIDEnvVar names the environment variable consulted for the
	// private user id when none is configured explicitly.
	UserIDEnvVar = "SPONSORBLOCK_USER_ID"

	defaultService    = "YouTube"
	defaultHashLength = 4
)

// Client talks to a SponsorBlock server. Construct it with New; the zero
// value is not usable. A Client is safe for concurrent use.
type Client struct {
	http       *http.Client
	baseURL    string
	userID     string
	userAgent  string
	categories []types.Category
	service    string
	hashLength int
	cache      *ttlCache
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL points the client at a self-hosted server instead of the
// public one.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the request timeout on the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = httpclient.New(d) }
}

// WithHTTPClient injects a caller-owned *http.Client, including any
// transport, proxy or timeout configuration on it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUserID sets the private user id used for submissions and votes.
// When absent, SPONSORBLOCK_USER_ID is consulted and a random id is
// generated as a last resort.
func WithUserID(id string) Option {
	return func(c *Client) { c.userID = id }
}

// WithDefaultCategories overrides the categories requested by
// SkipSegments when the caller passes none.
func WithDefaultCategories(categories ...types.Category) Option {
	return func(c *Client) { c.categories = categories }
}

// WithService selects the video service, "YouTube" by default.
func WithService(service string) Option {
	return func(c *Client) { c.service = service }
}

// WithHashPrefixLength sets how many hex characters of the hashed video
// id SkipSegmentsHashed sends. Must be between 4 and 32; shorter
// prefixes give stronger anonymity, longer ones smaller responses.
func WithHashPrefixLength(n int) Option {
	return func(c *Client) { c.hashLength = n }
}

// WithCacheTTL replaces every per-operation cache TTL with d.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.cache.override = d }
}

// WithoutCache disables response caching entirely.
func WithoutCache() Option {
	return func(c *Client) { c.cache.disabled = true }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a Client. Without options it talks to the public server
// with the default categories and a generated private user id.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  "gosponsorblock/" + version.Version,
		categories: types.AllCategories,
		service:    defaultService,
		hashLength: defaultHashLength,
		cache:      newTTLCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.Shared()
	}
	if c.hashLength < 4 || c.hashLength > 32 {
		return nil, errors.Errorf("hash prefix length must be between 4 and 32, got %d", c.hashLength)
	}
	if c.userID == "" {
		c.userID = os.Getenv(UserIDEnvVar)
	}
	if c.userID == "" {
		id, err := randomUserID()
		if err != nil {
			return nil, errors.Wrap(err, "generating private user id")
		}
		c.userID = id
	}
	return c, nil
}

// UserID returns the private user id the client submits and votes with.
// Keep it secret; it is the only credential SponsorBlock has.
func (c *Client) UserID() string { return c.userID }

func randomUserID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do runs one request and maps every failure onto the error taxonomy.
// The response body is returned only for 2xx answers.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)
	logger.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(req.Method, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("closing response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(req.Method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

// getJSON issues a GET and decodes the 2xx body into out.
func (c *Client) getJSON(path string, query url.Values, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &InvalidJSONError{Body: trimBody(body), cause: err}
	}
	return nil
}

// postJSON issues a POST with a JSON body and discards the response.
func (c *Client) postJSON(path string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding request body")
	}
	req, err := http.NewRequest(http.MethodPost, c.endpoint(path, nil), bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.do(req)
	return err
}

// postQuery issues a POST carrying its parameters in the query string,
// which is what the vote and viewed endpoints expect.
func (c *Client) postQuery(path string, query url.Values) error {
	req, err := http.NewRequest(http.MethodPost, c.endpoint(path, query), nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	_, err = c.do(req)
	return err
}
