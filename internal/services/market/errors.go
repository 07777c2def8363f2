package market

import (
	"errors"
	"fmt"

	"github.com/bobmcallan/finchat/internal/clients/alphavantage"
)

// ErrUnavailable is matched (errors.Is) by every gateway failure
var ErrUnavailable = errors.New("market data unavailable")

// FetchKind classifies why a fetch failed
type FetchKind string

const (
	KindTransport    FetchKind = "transport"    // network error or timeout
	KindStatus       FetchKind = "status"       // non-200 or provider error body
	KindMalformed    FetchKind = "malformed"    // undecodable body or unparsable field
	KindEmpty        FetchKind = "empty"        // expected object missing or empty
	KindUnconfigured FetchKind = "unconfigured" // no provider client
)

// FetchError describes a failed gateway call
type FetchError struct {
	Op   string // "quote", "forex" or "search"
	Key  string
	Kind FetchKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Key, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Key, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrUnavailable
func (e *FetchError) Is(target error) bool {
	return target == ErrUnavailable
}

func newFetchError(op, key string, err error) *FetchError {
	return &FetchError{Op: op, Key: key, Kind: classify(err), Err: err}
}

func classify(err error) FetchKind {
	var apiErr *alphavantage.APIError
	switch {
	case errors.Is(err, alphavantage.ErrNoData):
		return KindEmpty
	case errors.Is(err, alphavantage.ErrMalformed):
		return KindMalformed
	case errors.As(err, &apiErr):
		return KindStatus
	default:
		return KindTransport
	}
}
