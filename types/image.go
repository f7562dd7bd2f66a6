package types

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/anitschke/go-dogapi/internal/errorx"
	"github.com/anitschke/go-dogapi/internal/mime"
)

// The Dog API hands back image URLs whose path names the collection the image
// was drawn from. For example
//
// URL: https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg
// Collection: "hound-afghan" (breed "hound", sub-breed "afghan")
// File: "n02088094_1003.jpg"
//
// As with the rest of the URL handling we let url.Parse deal with the URL and
// only use the regexp on the path.
var collectionFromImageURLPath = regexp.MustCompile(`^/breeds/([^/]+)/([^/]+)$`)

var ErrNotAnImageURL = errors.New("not a Dog API image URL")

// Image describes an image URL returned by the Dog API.
type Image struct {
	URL      string
	Breed    string
	SubBreed string // empty if the image belongs to the breed itself
	FileName string
	MIMEType string // empty if it could not be inferred from the file name
}

// ParseImage extracts the breed, sub-breed and file name encoded in an image
// URL returned by the Dog API.
func ParseImage(imageURL string) (retImage Image, err error) {
	defer errorx.WrapWithFuncNameIfError(&err)

	u, err := url.Parse(imageURL)
	if err != nil {
		return Image{}, err
	}
	if u.Scheme == "" || u.Host == "" {
		return Image{}, fmt.Errorf("%w: %q is not absolute", ErrNotAnImageURL, imageURL)
	}

	m := collectionFromImageURLPath.FindStringSubmatch(u.Path)
	if m == nil {
		return Image{}, fmt.Errorf("%w: unexpected path %q", ErrNotAnImageURL, u.Path)
	}

	breed, subBreed, _ := strings.Cut(m[1], "-")
	if breed == "" {
		return Image{}, fmt.Errorf("%w: empty breed in path %q", ErrNotAnImageURL, u.Path)
	}

	return Image{
		URL:      imageURL,
		Breed:    breed,
		SubBreed: subBreed,
		FileName: m[2],
		MIMEType: mime.TypeByExtension(path.Ext(m[2])),
	}, nil
}

// Collection returns the collection name the image belongs to in the form the
// Dog API uses in its image paths, ie "hound-afghan" or "shiba".
func (img Image) Collection() string {
	if img.SubBreed == "" {
		return img.Breed
	}
	return img.Breed + "-" + img.SubBreed
}
