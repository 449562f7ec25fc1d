package landing

import (
	"log/slog"
	"time"

	"github.com/Narturebelle/Narturebelle/domain/contact"
)

// PageOptions configures every page a Store creates.
type PageOptions struct {
	Clock       contact.Clock
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	Log         *slog.Logger
	Metrics     *Metrics
}

// NewPageFactory returns a constructor for fresh visitor pages backed by
// the simulated sender.
func NewPageFactory(opts PageOptions) func() *Page {
	if opts.Clock == nil {
		opts.Clock = contact.SystemClock()
	}
	return func() *Page {
		form := contact.NewMachine(contact.Options{
			Clock:      opts.Clock,
			Sender:     contact.NewSimulatedSender(opts.Clock, opts.SubmitDelay),
			ResetDelay: opts.ResetDelay,
			Log:        opts.Log,
		})
		if opts.Metrics != nil {
			form.OnTransition(opts.Metrics.ObserveTransition)
		}
		return NewPage(form)
	}
}
