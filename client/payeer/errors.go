package payeer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ValidationError is returned before any request is made when a wallet
// number is malformed.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return "Wrong wallet format"
}

// APIError carries the "errors" field of a failed response as received.
type APIError struct {
	Errors json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payeer api error: %s", string(e.Errors))
}

// Messages flattens the payload when it is a string, a list of strings or
// an object of strings. Other shapes yield nil; use Errors directly.
func (e *APIError) Messages() []string {
	var single string
	if err := json.Unmarshal(e.Errors, &single); err == nil {
		return []string{single}
	}
	var list []string
	if err := json.Unmarshal(e.Errors, &list); err == nil {
		return list
	}
	var byKey map[string]string
	if err := json.Unmarshal(e.Errors, &byKey); err == nil {
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		messages := make([]string, 0, len(keys))
		for _, k := range keys {
			messages = append(messages, byKey[k])
		}
		return messages
	}
	return nil
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}
