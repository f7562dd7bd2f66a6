package errorx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBreedNotFound = errors.New("breed not found")

func TestWrapIfError_hasError(t *testing.T) {
	actErr := func() (err error) {
		defer WrapIfError("failed to list sub-breeds", &err)
		return errBreedNotFound
	}()

	assert.Error(t, actErr)
	assert.Equal(t, "failed to list sub-breeds: breed not found", actErr.Error())
	assert.ErrorIs(t, actErr, errBreedNotFound)
}

func TestWrapIfError_noError(t *testing.T) {
	actErr := func() (err error) {
		defer WrapIfError("failed to list sub-breeds", &err)
		return nil
	}()

	assert.NoError(t, actErr)
}

func lookupBreed(fail bool) (err error) {
	defer WrapWithFuncNameIfError(&err)
	if fail {
		return errBreedNotFound
	}
	return nil
}

func TestWrapWithFuncNameIfError_hasError(t *testing.T) {
	actErr := lookupBreed(true)

	assert.Error(t, actErr)
	assert.Equal(t, "errorx.lookupBreed: breed not found", actErr.Error())
	assert.ErrorIs(t, actErr, errBreedNotFound)
}

func TestWrapWithFuncNameIfError_noError(t *testing.T) {
	assert.NoError(t, lookupBreed(false))
}
