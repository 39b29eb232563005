// Package notifier renders user-visible notifications. The service has
// no UI of its own, so notices land in the structured log where the
// presentation collaborator picks them up.
package notifier

import (
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Notifier = (*LogNotifier)(nil)

type LogNotifier struct {
	log *slog.Logger
}

func New() LogNotifier {
	return LogNotifier{slog.With("component", "notifier")}
}

func (n LogNotifier) Notify(kind domain.NoticeKind, message string) {
	switch kind {
	case domain.NoticeError:
		n.log.Error(message, "kind", kind)
	case domain.NoticeSuccess, domain.NoticeInfo:
		n.log.Info(message, "kind", kind)
	default:
		n.log.Info(message, "kind", kind)
	}
}
