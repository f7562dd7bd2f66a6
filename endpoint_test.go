package dogapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	type testData struct {
		name        string
		endpoint    string
		expEndpoint string
	}

	testCases := []testData{
		{name: "randomImage", endpoint: randomImageEndpoint(), expEndpoint: "breeds/image/random"},
		{name: "multipleRandomImages", endpoint: multipleRandomImagesEndpoint(3), expEndpoint: "breeds/image/random/3"},
		{name: "multipleRandomImagesNegative", endpoint: multipleRandomImagesEndpoint(-1), expEndpoint: "breeds/image/random/-1"},
		{name: "multipleRandomImagesOverLimit", endpoint: multipleRandomImagesEndpoint(127), expEndpoint: "breeds/image/random/127"},
		{name: "randomImageByBreed", endpoint: randomImageByBreedEndpoint("hound"), expEndpoint: "breed/hound/images/random"},
		{name: "multipleRandomImagesByBreed", endpoint: multipleRandomImagesByBreedEndpoint("hound", 1000), expEndpoint: "breed/hound/images/random/1000"},
		{name: "randomImageBySubBreed", endpoint: randomImageBySubBreedEndpoint("hound", "afghan"), expEndpoint: "breed/hound/afghan/images/random"},
		{name: "multipleRandomImagesBySubBreed", endpoint: multipleRandomImagesBySubBreedEndpoint("hound", "afghan", 0), expEndpoint: "breed/hound/afghan/images/random/0"},
		{name: "imagesByBreed", endpoint: imagesByBreedEndpoint("hound"), expEndpoint: "breed/hound/images"},
		{name: "imagesBySubBreed", endpoint: imagesBySubBreedEndpoint("hound", "afghan"), expEndpoint: "breed/hound/afghan/images"},
		{name: "breedsList", endpoint: breedsListEndpoint(), expEndpoint: "breeds/list/all"},
		{name: "subBreedsList", endpoint: subBreedsListEndpoint("hound"), expEndpoint: "breed/hound/list"},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			assert.Equal(t, td.expEndpoint, td.endpoint)
		})
	}
}

func TestEndpoints_TrimsNames(t *testing.T) {
	assert.Equal(t, "breed/hound/images/random", randomImageByBreedEndpoint("  hound\t"))
	assert.Equal(t, "breed/hound/afghan/images", imagesBySubBreedEndpoint("\nhound ", " afghan "))
	assert.Equal(t, "breed/hound/list", subBreedsListEndpoint(" hound "))
}

func TestEndpoints_EscapesNames(t *testing.T) {
	assert.Equal(t, "breed/a%2Fb/list", subBreedsListEndpoint("a/b"))
	assert.Equal(t, "breed/german%20shepherd/images", imagesByBreedEndpoint(" german shepherd "))
	assert.Equal(t, "breed/hound/a%3Fb/images/random", randomImageBySubBreedEndpoint("hound", "a?b"))
}
