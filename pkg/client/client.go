package client

import (
	"context"
	"net/url"
)

type Client interface {
	FetchJSON(ctx context.Context, path string, query url.Values) ([]byte, error)
}
