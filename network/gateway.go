package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/log"
)

// Response is the raw outcome of a gateway call. Status is never interpreted here.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether Status is 2xx.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Gateway performs synchronous HTTP calls on behalf of the upstream client.
// Implementations return an error only for transport failures; non-2xx statuses
// come back as a Response.
type Gateway interface {
	Get(url string, headers map[string]string) (Response, error)
	Post(url string, body []byte, headers map[string]string) (Response, error)
}

// HTTPGateway is the production Gateway over net/http.
type HTTPGateway struct {
	Client *http.Client

	// Headers, when set, is consulted on every request for headers that depend on
	// session state, such as authorization.
	Headers func() map[string]string
}

// NewGateway returns an HTTPGateway using client, or the shared Client when nil.
func NewGateway(client *http.Client, headers func() map[string]string) *HTTPGateway {
	if client == nil {
		client = Client
	}
	return &HTTPGateway{Client: client, Headers: headers}
}

func (g *HTTPGateway) Get(url string, headers map[string]string) (Response, error) {
	return g.do(http.MethodGet, url, nil, headers)
}

func (g *HTTPGateway) Post(url string, body []byte, headers map[string]string) (Response, error) {
	return g.do(http.MethodPost, url, body, headers)
}

func (g *HTTPGateway) do(method, url string, body []byte, headers map[string]string) (Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if g.Headers != nil {
		for k, v := range g.Headers() {
			req.Header.Set(k, v)
		}
	}

	log.Debugf("%s %s", method, url)
	resp, err := g.Client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{Status: resp.StatusCode}, fmt.Errorf("read body: %w", err)
	}

	return Response{Status: resp.StatusCode, Body: data}, nil
}
