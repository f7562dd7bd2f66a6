package httpx

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

var ErrBodyNotText = errors.New("response body is not valid UTF-8 text")

// Getter is the transport used to talk to the Dog API. It issues a single GET
// and hands back the full response body as text.
//
// The HTTP status code is deliberately not interpreted here, the Dog API
// reports failures inside the JSON body so it is up to the caller to decide if
// the response was a success.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// RestyGetter implements Getter on top of a resty client.
type RestyGetter struct {
	client *resty.Client
}

var _ = (Getter)((*RestyGetter)(nil))

// NewRestyGetter creates a Getter that sends requests using the provided
// http.Client. If client is nil a default client is used. No timeout, retry or
// additional headers are configured beyond what the http.Client already does.
func NewRestyGetter(client *http.Client) *RestyGetter {
	var rc *resty.Client
	if client == nil {
		rc = resty.New()
	} else {
		rc = resty.NewWithClient(client)
	}
	return &RestyGetter{client: rc}
}

func (g *RestyGetter) Get(ctx context.Context, url string) (string, error) {
	resp, err := g.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}

	body := resp.Body()
	if !utf8.Valid(body) {
		return "", ErrBodyNotText
	}
	return string(body), nil
}
