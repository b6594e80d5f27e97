package workers

import (
	"context"

	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

// LogSender writes notifications to the application log. It stands in
// for a real delivery channel in deployments that have none configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{logger: log}
}

func (s *LogSender) Send(_ context.Context, n models.Notification) error {
	s.logger.Info().
		Str("kind", string(n.Kind)).
		Str("item_id", n.ItemID).
		Str("parent_id", n.ParentID).
		Str("author_id", n.AuthorID).
		Msg("notification")
	return nil
}
