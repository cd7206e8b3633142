package ports

import "context"

// Optional cache sitting in front of the listing resolver.
// A miss is (zero value, false, nil); errors indicate the cache itself
// failed and callers may proceed without it.
type LookupCache interface {
	Get(ctx context.Context, mlsNumber string) (LookupResult, bool, error)
	Put(ctx context.Context, mlsNumber string, result LookupResult) error
}
