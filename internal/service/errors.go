package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired = errors.New("id is required")
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("not found")
)

// NotFoundError reports that no record matched a lookup key. Its message
// names the key so it can be returned to clients as is.
type NotFoundError struct {
	Resource string
	Key      string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s=%s not found", e.Resource, e.Key, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(resource, key, value string) error {
	return &NotFoundError{Resource: resource, Key: key, Value: value}
}
