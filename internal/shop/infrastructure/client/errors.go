package client

import (
	"errors"
	"fmt"

	"github.com/dmehra2102/otel-shop/pkg/problem"
)

var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a backend answers 404 for ID.
type NotFoundError struct {
	Resource string
	ID       string
	// Problem is the remote problem body, if one could be decoded.
	Problem *problem.Detail
}

func (e *NotFoundError) Error() string {
	if e.Problem != nil && e.Problem.Title != "" {
		return e.Problem.Title
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StatusError is any other non-2xx answer.
type StatusError struct {
	Resource   string
	ID         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("get %s %s: unexpected status %d", e.Resource, e.ID, e.StatusCode)
}
