package strsearch

import "log/slog"

// Option configures a Searcher.
type Option func(*options)

type options struct {
	logger *slog.Logger
	// maxSequence caps the needles of a single sequence or marker group.
	// Zero means unlimited.
	maxSequence int
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger routes debug traces of sequence and extraction steps to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxSequence rejects needle sequences and marker groups longer than n.
// Values below 1 remove the limit, which is the default. Occurrence counts
// of IndexNth are not sequences and are never limited.
func WithMaxSequence(n int) Option {
	return func(o *options) {
		o.maxSequence = max(n, 0)
	}
}
