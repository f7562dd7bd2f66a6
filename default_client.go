package dogapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/anitschke/go-dogapi/httpx"
	"github.com/anitschke/go-dogapi/internal/config"
	"github.com/anitschke/go-dogapi/internal/errorx"
	"github.com/anitschke/go-dogapi/internal/logger"
	"github.com/anitschke/go-dogapi/types"
	"go.uber.org/zap"
)

// DefaultBaseURL is the base URL of the public Dog API.
const DefaultBaseURL = config.DefaultBaseURL

type DefaultClientOptions struct {
	// HTTPClient is optional, if not specified a default client is used. It
	// is ignored if Getter is specified.
	HTTPClient *http.Client

	// Getter is optional, it replaces the transport used to send requests.
	Getter httpx.Getter

	// BaseURL is optional, if not specified DefaultBaseURL is used.
	BaseURL string

	// Logger is optional, if not specified nothing is logged.
	Logger *zap.Logger
}

// DefaultClient is the Client implementation that talks to the Dog API over
// HTTP. It holds no mutable state and is safe for concurrent use.
type DefaultClient struct {
	getter  httpx.Getter
	baseURL string
	log     *zap.Logger
}

var _ = (Client)((*DefaultClient)(nil))

func NewDefaultClient(opts DefaultClientOptions) (retClient *DefaultClient, err error) {
	defer errorx.WrapIfError("failed to create Dog API client", &err)

	baseURL, err := config.NormalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if opts.Getter == nil {
		opts.Getter = httpx.NewRestyGetter(opts.HTTPClient)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &DefaultClient{
		getter:  opts.Getter,
		baseURL: baseURL,
		log:     opts.Logger,
	}, nil
}

// NewDefaultClientFromEnv creates a DefaultClient configured from the
// DOGAPI_BASE_URL and DOGAPI_LOG_LEVEL environment variables, which may also
// be given in a .env file in the working directory.
func NewDefaultClientFromEnv() (retClient *DefaultClient, err error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return NewDefaultClient(DefaultClientOptions{
		BaseURL: cfg.BaseURL,
		Logger:  log,
	})
}

func (c *DefaultClient) RandomImage(ctx context.Context) (string, error) {
	return get(ctx, c, randomImageEndpoint(), decodeString)
}

func (c *DefaultClient) MultipleRandomImages(ctx context.Context, n int8) ([]string, error) {
	return getDynamic(ctx, c, multipleRandomImagesEndpoint(n), projectStringArray)
}

func (c *DefaultClient) RandomImageByBreed(ctx context.Context, breed string) (string, error) {
	return get(ctx, c, randomImageByBreedEndpoint(breed), decodeString)
}

func (c *DefaultClient) MultipleRandomImagesByBreed(ctx context.Context, breed string, n int64) ([]string, error) {
	return getDynamic(ctx, c, multipleRandomImagesByBreedEndpoint(breed, n), projectStringArray)
}

func (c *DefaultClient) RandomImageBySubBreed(ctx context.Context, breed string, subBreed string) (string, error) {
	return get(ctx, c, randomImageBySubBreedEndpoint(breed, subBreed), decodeString)
}

func (c *DefaultClient) MultipleRandomImagesBySubBreed(ctx context.Context, breed string, subBreed string, n int64) ([]string, error) {
	return getDynamic(ctx, c, multipleRandomImagesBySubBreedEndpoint(breed, subBreed, n), projectStringArray)
}

func (c *DefaultClient) ImagesByBreed(ctx context.Context, breed string) ([]string, error) {
	return getDynamic(ctx, c, imagesByBreedEndpoint(breed), projectStringArray)
}

func (c *DefaultClient) ImagesBySubBreed(ctx context.Context, breed string, subBreed string) ([]string, error) {
	return getDynamic(ctx, c, imagesBySubBreedEndpoint(breed, subBreed), projectStringArray)
}

func (c *DefaultClient) BreedsList(ctx context.Context) (types.BreedCatalog, error) {
	return getDynamic(ctx, c, breedsListEndpoint(), projectBreedCatalog)
}

func (c *DefaultClient) SubBreedsList(ctx context.Context, breed string) (types.SubBreeds, error) {
	return getDynamic(ctx, c, subBreedsListEndpoint(breed), projectSubBreeds)
}

// get sends a GET request for the endpoint and decodes the body using decode.
// The returned error, if any, is always an *Error.
func get[T any](ctx context.Context, c *DefaultClient, endpoint string, decode func(body string) (T, error)) (T, error) {
	var zero T
	url := c.baseURL + endpoint
	log := c.log.With(zap.String("url", url))

	log.Debug("sending request")
	body, err := c.getter.Get(ctx, url)
	if err != nil {
		tErr := newTransportError(err)
		log.Debug("request failed", zap.String("kind", string(tErr.Kind)), zap.Error(err))
		return zero, tErr
	}

	result, err := decode(body)
	if err != nil {
		var dErr *Error
		if errors.As(err, &dErr) {
			log.Debug("request failed", zap.String("kind", string(dErr.Kind)), zap.String("message", dErr.Message))
		}
		return zero, err
	}

	log.Debug("request succeeded")
	return result, nil
}

func getDynamic[T any](ctx context.Context, c *DefaultClient, endpoint string, project func(message any) (T, error)) (T, error) {
	return get(ctx, c, endpoint, func(body string) (T, error) {
		return decodeDynamic(body, project)
	})
}
