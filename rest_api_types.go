package dogapi

import (
	"encoding/json"

	"github.com/anitschke/go-dogapi/types"
)

// This file contains types to support unmarshalling all of the responses we get
// back from the Dog API.
//
// Every response is wrapped in an envelope of the form
//
//	{"message": ..., "status": "success"}
//
// where the type of message depends both on the endpoint and on whether the
// request succeeded. On failure status is something other than "success" and
// message holds the error text.

const statusSuccess = "success"

// stringEnvelope is used for endpoints where message is always a string. Both
// fields are pointers so that a missing field can be told apart from an empty
// one.
type stringEnvelope struct {
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// decodeString decodes a response whose message is always a single string.
func decodeString(body string) (string, error) {
	var env stringEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return "", newDecodeError(err)
	}
	if env.Status == nil || env.Message == nil {
		return "", newDecodeError(nil)
	}
	if *env.Status != statusSuccess {
		return "", newAPIError(*env.Message)
	}
	return *env.Message, nil
}

// decodeDynamic decodes a response whose message type varies depending on the
// outcome of the request. The body is first parsed into a generic JSON value,
// the status and message fields are checked and then, on success, project
// turns the message into the type the caller asked for.
func decodeDynamic[T any](body string, project func(message any) (T, error)) (T, error) {
	var zero T

	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return zero, newDecodeError(err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return zero, newDecodeError(nil)
	}
	rawStatus, ok := obj["status"]
	if !ok {
		return zero, newDecodeError(nil)
	}
	message, ok := obj["message"]
	if !ok {
		return zero, newDecodeError(nil)
	}
	status, ok := rawStatus.(string)
	if !ok {
		return zero, newDecodeError(nil)
	}

	if status != statusSuccess {
		text, ok := message.(string)
		if !ok {
			text = fallbackMessage
		}
		return zero, newAPIError(text)
	}

	return project(message)
}

// stringsOf collects every string element of arr in order. Anything that is not
// a string is skipped rather than treated as an error.
func stringsOf(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func projectStringArray(message any) ([]string, error) {
	arr, ok := message.([]any)
	if !ok {
		return nil, newDecodeError(nil)
	}
	return stringsOf(arr), nil
}

// projectSubBreeds treats an empty array as "no sub-breeds".
func projectSubBreeds(message any) (types.SubBreeds, error) {
	arr, ok := message.([]any)
	if !ok {
		return types.NoSubBreeds(), newDecodeError(nil)
	}
	return subBreedsOf(arr), nil
}

// projectBreedCatalog expects an object mapping breed names to arrays of
// sub-breeds. Breeds whose value isn't an array are left out of the catalog.
func projectBreedCatalog(message any) (types.BreedCatalog, error) {
	obj, ok := message.(map[string]any)
	if !ok {
		return nil, newDecodeError(nil)
	}

	catalog := make(types.BreedCatalog, len(obj))
	for breed, v := range obj {
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		catalog[breed] = subBreedsOf(arr)
	}
	return catalog, nil
}

func subBreedsOf(arr []any) types.SubBreeds {
	if len(arr) == 0 {
		return types.NoSubBreeds()
	}
	return types.NewSubBreeds(stringsOf(arr))
}
