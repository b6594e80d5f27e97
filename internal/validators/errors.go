package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyGroupID      = errors.New("group is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyStartTime    = errors.New("start time is required")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrEmptyDiscussionID = errors.New("discussion is required")
	ErrEmptyBody         = errors.New("body is required")
	ErrUnknownAttendance = errors.New("unknown attendance status")
	ErrUnknownRole       = errors.New("unknown role")
)
