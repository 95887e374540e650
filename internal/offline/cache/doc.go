// Package cache holds named buckets of request-keyed responses that the
// offline worker serves when the network is unavailable.
//
// Every operation is idempotent: opening an existing bucket returns it,
// deleting a missing bucket or key reports false, and putting the same key
// twice keeps the latest response.
package cache
