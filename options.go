package tableview

import "log/slog"

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	metrics       *Metrics
	fixedColumns  int
	matchCounting bool
	veto          VetoFunc
	groups        func(row int) []int
	groupOp       MergeOp
}

func newConfig(options []Option) *config {
	c := &config{
		fixedColumns:  DefaultFixedColumns,
		matchCounting: DefaultMatchCounting,
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// WithLogger sets the logger for warnings about stale
// column references and failed revalidations.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics sets the Metrics to collect revalidation statistics.
func WithMetrics(metrics *Metrics) Option {
	return func(c *config) { c.metrics = metrics }
}

// WithFixedColumns sets the default number of frozen leading columns.
func WithFixedColumns(n int) Option {
	return func(c *config) { c.fixedColumns = n }
}

// WithMatchCounting enables or disables candidate value counting.
func WithMatchCounting(enabled bool) Option {
	return func(c *config) { c.matchCounting = enabled }
}

// WithVeto sets the hook that can reject changes of the displayed columns.
func WithVeto(veto VetoFunc) Option {
	return func(c *config) { c.veto = veto }
}

// WithGroups makes the filter result of a row the merge of its own result
// with the results of the rows returned by children, using op.
// Use it for hierarchical data where a parent row is displayed
// depending on its children.
func WithGroups(children func(row int) []int, op MergeOp) Option {
	return func(c *config) {
		c.groups = children
		c.groupOp = op
	}
}
