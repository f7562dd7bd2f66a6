package dogapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Fixed path segments of the Dog API endpoints.
const (
	segBreeds = "breeds"
	segBreed  = "breed"
	segImage  = "image"
	segImages = "images"
	segRandom = "random"
	segList   = "list"
	segAll    = "all"
)

// name turns a caller supplied breed or sub-breed into a path segment.
// Surrounding whitespace is dropped and anything that isn't safe in a path
// segment is percent-encoded.
func name(s string) string {
	return url.PathEscape(strings.TrimSpace(s))
}

func count[N int8 | int64](n N) string {
	return strconv.FormatInt(int64(n), 10)
}

// endpoint joins the path segments into a path relative to the API base URL.
func endpoint(segments ...string) string {
	return strings.Join(segments, "/")
}

func randomImageEndpoint() string {
	return endpoint(segBreeds, segImage, segRandom)
}

func multipleRandomImagesEndpoint(n int8) string {
	return endpoint(segBreeds, segImage, segRandom, count(n))
}

func randomImageByBreedEndpoint(breed string) string {
	return endpoint(segBreed, name(breed), segImages, segRandom)
}

func multipleRandomImagesByBreedEndpoint(breed string, n int64) string {
	return endpoint(segBreed, name(breed), segImages, segRandom, count(n))
}

func randomImageBySubBreedEndpoint(breed, subBreed string) string {
	return endpoint(segBreed, name(breed), name(subBreed), segImages, segRandom)
}

func multipleRandomImagesBySubBreedEndpoint(breed, subBreed string, n int64) string {
	return endpoint(segBreed, name(breed), name(subBreed), segImages, segRandom, count(n))
}

func imagesByBreedEndpoint(breed string) string {
	return endpoint(segBreed, name(breed), segImages)
}

func imagesBySubBreedEndpoint(breed, subBreed string) string {
	return endpoint(segBreed, name(breed), name(subBreed), segImages)
}

func breedsListEndpoint() string {
	return endpoint(segBreeds, segList, segAll)
}

func subBreedsListEndpoint(breed string) string {
	return endpoint(segBreed, name(breed), segList)
}
