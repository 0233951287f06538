package recognition

import (
	"net/http"
	"strings"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type option func(c *Client)

const (
	speakersPath = "/api/speakers"
	verifyPath   = "/api/verify"
	reloadPath   = "/api/reload"
)

// NewClient создает клиент сервиса распознавания дикторов.
// baseURL - адрес сервиса без завершающего слеша, например http://localhost:8000
func NewClient(baseURL string, options ...option) *Client {
	newClient := &Client{
		httpClient: http.DefaultClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}

	for _, opt := range options {
		opt(newClient)
	}

	return newClient
}

func WithHttpClient(c *http.Client) option {
	return func(m *Client) {
		m.httpClient = c
	}
}
