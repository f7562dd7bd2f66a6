package dogapi

import (
	"context"

	"github.com/anitschke/go-dogapi/types"
)

// Client gives access to the Dog API, see https://dog.ceo/dog-api/
//
// Every method issues exactly one GET request, nothing is cached so calling a
// "random" method twice will usually give different results. Breed and
// sub-breed names have surrounding whitespace removed before they are used.
//
// All errors returned are of type *Error, use errors.Is with ErrTransport,
// ErrDecode or ErrAPI to check what kind of failure occurred.
type Client interface {
	// RandomImage returns the URL of a random image from all dogs.
	RandomImage(ctx context.Context) (string, error)

	// MultipleRandomImages returns the URLs of n random images from all dogs.
	//
	// The Dog API returns at most 50 images, n is passed through as is and it
	// is up to the caller to stay within that limit.
	MultipleRandomImages(ctx context.Context, n int8) ([]string, error)

	// RandomImageByBreed returns the URL of a random image of breed, ie
	// "hound".
	RandomImageByBreed(ctx context.Context, breed string) (string, error)

	// MultipleRandomImagesByBreed returns the URLs of n random images of
	// breed. Fewer than n URLs are returned if the breed does not have that
	// many images.
	MultipleRandomImagesByBreed(ctx context.Context, breed string, n int64) ([]string, error)

	// RandomImageBySubBreed returns the URL of a random image of a sub-breed,
	// ie breed "hound" and sub-breed "afghan".
	RandomImageBySubBreed(ctx context.Context, breed string, subBreed string) (string, error)

	MultipleRandomImagesBySubBreed(ctx context.Context, breed string, subBreed string, n int64) ([]string, error)

	// ImagesByBreed returns the URLs of all images of breed.
	ImagesByBreed(ctx context.Context, breed string) ([]string, error)

	// ImagesBySubBreed returns the URLs of all images of a sub-breed.
	ImagesBySubBreed(ctx context.Context, breed string, subBreed string) ([]string, error)

	// BreedsList returns every breed along with its sub-breeds.
	BreedsList(ctx context.Context) (types.BreedCatalog, error)

	// SubBreedsList returns the sub-breeds of breed. If the breed has no
	// sub-breeds the returned value is not present.
	SubBreedsList(ctx context.Context, breed string) (types.SubBreeds, error)
}
