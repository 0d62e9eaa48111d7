package ldpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config configures a Client.
type Config struct {
	// HTTP client used for requests. http.DefaultClient is used if nil.
	HTTP *http.Client
	// Logger to use. The global zerolog logger is used if nil.
	Logger *zerolog.Logger
	// Headers added to every request, e.g. Accept or Authorization.
	Headers http.Header
}

// Client issues requests against an LDP server and interprets each
// response into a Response view. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	log     zerolog.Logger
	headers http.Header
}

// NewClient initializes a client from config.
func NewClient(config Config) *Client {
	httpClient := config.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var logger zerolog.Logger
	if config.Logger == nil {
		logger = log.Logger
	} else {
		logger = *config.Logger
	}

	return &Client{
		http:    httpClient,
		log:     logger,
		headers: config.Headers,
	}
}

// Get reads the resource at url.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, nil)
}

// Head probes the resource at url without transferring its body.
func (c *Client) Head(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodHead, url, nil, nil)
}

// Options asks the server which methods the resource at url supports.
// The advertised capabilities end up in the view's AllowedMethods.
func (c *Client) Options(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodOptions, url, nil, nil)
}

// Put replaces the resource at url with body.
func (c *Client) Put(ctx context.Context, url string, body io.Reader) (*Response, error) {
	header := make(http.Header)
	header.Set("Content-Type", TextTurtle)
	return c.do(ctx, http.MethodPut, url, header, body)
}

// Patch applies a SPARQL update to the resource at url.
func (c *Client) Patch(ctx context.Context, url string, patch io.Reader) (*Response, error) {
	header := make(http.Header)
	header.Set("Content-Type", SparqlUpdate)
	return c.do(ctx, http.MethodPatch, url, header, patch)
}

// Delete removes the resource at url.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

// Post creates a new resource inside the container at url. slug is the
// suggested name for the new resource and may be empty. The created
// resource's location is available as the view's URL.
func (c *Client) Post(ctx context.Context, url, slug string, body io.Reader) (*Response, error) {
	return c.create(ctx, url, slug, LDPResource, body)
}

// CreateContainer creates a new basic container inside the container at
// url.
func (c *Client) CreateContainer(ctx context.Context, url, slug string) (*Response, error) {
	return c.create(ctx, url, slug, LDPBasicContainer, nil)
}

func (c *Client) create(ctx context.Context, url, slug, linkType string, body io.Reader) (*Response, error) {
	header := make(http.Header)
	header.Set("Content-Type", TextTurtle)
	header.Set("Link", fmt.Sprintf(`<%s>; rel="type"`, linkType))
	if slug != "" {
		header.Set("Slug", slug)
	}
	return c.do(ctx, http.MethodPost, url, header, body)
}

// do sends one request and interprets the response. A transport error
// still yields a non-nil degraded view alongside the error, so callers
// can query the view unconditionally.
func (c *Client) do(ctx context.Context, method, url string, header http.Header, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return NewResponse(nil, method), err
	}
	setHeaders(req.Header, c.headers)
	setHeaders(req.Header, header)

	logger := c.log.With().
		Str("id", uuid.NewString()).
		Str("method", method).
		Str("url", url).
		Logger()

	logger.Trace().Msg("Sending request")
	res, err := c.http.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Request failed")
		return NewResponse(nil, method), err
	}
	logger.Debug().Int("status", res.StatusCode).Msg("Response received")

	return NewResponse(res, method), nil
}

func setHeaders(dst, src http.Header) {
	for name, values := range src {
		dst.Del(name)
		for _, value := range values {
			dst.Add(name, value)
		}
	}
}
