package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/velikanov/groupsync/internal/feed"
)

// remoteFeed traverses one collection endpoint. The server has already
// filtered and annotated the rows, so a page decodes straight into
// feed.Page and is handed to the controller untouched.
type remoteFeed[T any] struct {
	client *Client
	path   string
}

func (f *remoteFeed[T]) FetchPage(ctx context.Context, req feed.PageRequest) (feed.Page[T], error) {
	r := f.client.authedRequest(ctx).
		SetQueryParam("direction", req.Direction.String())
	if req.Cursor != nil {
		r.SetQueryParam("cursor", string(*req.Cursor))
	}
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}

	resp, err := r.Get(f.path)
	if err != nil {
		return feed.Page[T]{}, fmt.Errorf("%w: %w", feed.ErrFetchFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return feed.Page[T]{}, err
	}

	var page feed.Page[T]
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return feed.Page[T]{}, fmt.Errorf("decode page response: %w", err)
	}

	return page, nil
}
