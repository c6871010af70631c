package threadsclient

import (
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

type Client struct {
	restyClient *resty.Client
	host        string
}

func New() *Client {
	return NewWithHost(API_HOST)
}

// NewWithHost creates a client against a non-default API host
func NewWithHost(host string) *Client {
	restyClient := resty.New()
	restyClient.SetHeader(HEADER_CACHE_CONTROL, CACHE_NO_STORE)

	return &Client{
		restyClient: restyClient,
		host:        host,
	}
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.restyClient.SetLogger(logger)
}
