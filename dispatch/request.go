package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync/atomic"
)

var (
	ErrBodyConsumed = errors.New("request body already read")
	ErrBodyTooLarge = errors.New("request body too large")
)

// BodyReader delivers the request body. ReadBody may be called once; it
// blocks until the transport has delivered the full body.
type BodyReader interface {
	ReadBody(ctx context.Context) ([]byte, error)
}

// Request represents an incoming request, normalized by the transport.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     BodyReader
}

// QueryParams maps parameter names to their values, in query string order.
type QueryParams map[string][]string

// ParseQuery parses a raw query string. Pairs are separated by '&' only
// and split on the first '='. Pairs without '=' and blank values are
// dropped. Text that fails to unescape is kept as written.
func ParseQuery(rawQuery string) QueryParams {
	params := make(QueryParams)

	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}

		key = unescapeQuery(key)
		params[key] = append(params[key], unescapeQuery(value))
	}

	return params
}

func unescapeQuery(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}

	return strings.ReplaceAll(s, "+", " ")
}

// First returns the first value of key.
func (q QueryParams) First(key string) (string, bool) {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

type streamBody struct {
	r     io.Reader
	limit int64
	read  atomic.Bool
}

// NewBodyReader returns a one-shot BodyReader over r. If limit is
// positive, bodies larger than limit bytes fail with ErrBodyTooLarge.
func NewBodyReader(r io.Reader, limit int64) BodyReader {
	return &streamBody{r: r, limit: limit}
}

// BytesBody returns a one-shot BodyReader over an in-memory body.
func BytesBody(body []byte) BodyReader {
	return NewBodyReader(bytes.NewReader(body), 0)
}

func (b *streamBody) ReadBody(ctx context.Context) ([]byte, error) {
	if b.read.Swap(true) {
		return nil, ErrBodyConsumed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.r == nil {
		return []byte{}, nil
	}

	r := b.r
	if b.limit > 0 {
		r = io.LimitReader(b.r, b.limit+1)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if b.limit > 0 && int64(len(body)) > b.limit {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}
