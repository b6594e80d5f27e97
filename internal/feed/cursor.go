package feed

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Cursor is an opaque resume token for keyset pagination. Its decoded
// value is the ordering key of the last retained item of a traversal; the
// traversal direction is not part of the token, so the same cursor decodes
// identically no matter which direction requested it.
type Cursor string

// cursorPayload is the wire form of a cursor. The timestamp travels as
// Unix nanoseconds so encode/decode is an exact, deterministic round trip.
type cursorPayload struct {
	At int64  `json:"a"`
	ID string `json:"i"`
}

// EncodeCursor encodes an ordering key into an opaque cursor token.
func EncodeCursor(key OrderingKey) Cursor {
	payload, _ := json.Marshal(cursorPayload{At: key.At.UnixNano(), ID: key.ID})
	return Cursor(base64.RawURLEncoding.EncodeToString(payload))
}

// DecodeCursor decodes a cursor back into its ordering key. The returned
// timestamp is normalized to UTC. Malformed tokens yield a wrapped
// [ErrInvalidCursor]; callers recover by restarting the traversal from the
// beginning of the requested direction.
func DecodeCursor(c Cursor) (OrderingKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return OrderingKey{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	var payload cursorPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return OrderingKey{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	if payload.ID == "" {
		return OrderingKey{}, fmt.Errorf("%w: empty identifier", ErrInvalidCursor)
	}

	return OrderingKey{At: time.Unix(0, payload.At).UTC(), ID: payload.ID}, nil
}

// cursorOf is a convenience for deriving a page-boundary cursor.
func cursorOf(key OrderingKey) *Cursor {
	c := EncodeCursor(key)
	return &c
}
