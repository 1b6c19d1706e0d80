package fsresult

import "github.com/jvens/fsresult/host"

type options struct {
	host             host.FS
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		host:             host.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures an FS.
type Option func(*options)

// WithHost sets the primitives the wrappers call.
//
// If nil is passed, host.Default is used.
func WithHost(h host.FS) Option {
	return func(o *options) {
		if h == nil {
			h = host.Default
		}
		o.host = h
	}
}

// WithLogger sets the logger that receives classified failures at debug
// level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after every call.
//
// Example:
//
//	mc := &fsresult.BasicMetricsCollector{}
//	fsys := fsresult.New(fsresult.WithMetricsCollector(mc))
//	fsys.Stat("/etc/hosts")
//	stats := mc.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
