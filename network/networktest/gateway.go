// Package networktest provides a scripted network.Gateway for tests.
package networktest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/odyssey-club/aiosource/network"
)

// Call is one recorded request.
type Call struct {
	Method string
	URL    string
	Body   string
}

// Handler answers a request. Returning an error simulates a transport failure.
type Handler func(call Call) (network.Response, error)

type route struct {
	method   string
	fragment string
	handler  Handler
}

// Gateway matches requests against routes in registration order by method and URL substring.
// Unmatched requests get a 404.
type Gateway struct {
	mu     sync.Mutex
	routes []route
	calls  []Call
}

func New() *Gateway {
	return &Gateway{}
}

// Handle registers a handler for requests whose URL contains fragment.
func (g *Gateway) Handle(method, fragment string, h Handler) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.routes = append(g.routes, route{method, fragment, h})
	return g
}

// JSON registers a 200 response with v encoded as the body.
func (g *Gateway) JSON(method, fragment string, v any) *Gateway {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return g.Raw(method, fragment, http.StatusOK, string(body))
}

// Raw registers a fixed status and body.
func (g *Gateway) Raw(method, fragment string, status int, body string) *Gateway {
	return g.Handle(method, fragment, func(Call) (network.Response, error) {
		return network.Response{Status: status, Body: []byte(body)}, nil
	})
}

// Fail registers a transport failure.
func (g *Gateway) Fail(method, fragment string) *Gateway {
	return g.Handle(method, fragment, func(Call) (network.Response, error) {
		return network.Response{}, errors.New("connection reset by peer")
	})
}

// Calls returns a snapshot of recorded requests.
func (g *Gateway) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Call(nil), g.calls...)
}

// Count returns how many recorded requests contain fragment in their URL.
func (g *Gateway) Count(fragment string) int {
	n := 0
	for _, c := range g.Calls() {
		if strings.Contains(c.URL, fragment) {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls, keeping routes.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}

func (g *Gateway) Get(url string, _ map[string]string) (network.Response, error) {
	return g.serve(Call{Method: http.MethodGet, URL: url})
}

func (g *Gateway) Post(url string, body []byte, _ map[string]string) (network.Response, error) {
	return g.serve(Call{Method: http.MethodPost, URL: url, Body: string(body)})
}

func (g *Gateway) serve(call Call) (network.Response, error) {
	g.mu.Lock()
	g.calls = append(g.calls, call)
	routes := g.routes
	g.mu.Unlock()

	for _, r := range routes {
		if r.method == call.Method && strings.Contains(call.URL, r.fragment) {
			return r.handler(call)
		}
	}
	return network.Response{Status: http.StatusNotFound, Body: []byte(`{"message":"not found"}`)}, nil
}
