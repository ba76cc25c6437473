package vector

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vector/pkg/activity"
	"github.com/goliatone/go-vector/pkg/fatal"
)

// Option configures a Vector at construction time.
type Option func(*config)

type config struct {
	reporter    *fatal.Reporter
	hooks       activity.Hooks
	activityCfg *activity.Config
	emitter     *activity.Emitter
	deepCopy    bool
}

// WithLogger routes violation diagnostics and warnings through logger. The
// logger's fatal path must terminate; by default zap exits the process.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.reporter = fatal.New(logger)
	}
}

// WithActivityHooks attaches hooks notified about storage lifecycle events.
// Hooks are cloned and nil entries dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *config) {
		cfg.hooks = normalized
	}
}

// WithActivityConfig overrides emission defaults. Without it, configured hooks
// are enabled on the default channel.
func WithActivityConfig(activityCfg activity.Config) Option {
	return func(cfg *config) {
		cfg.activityCfg = &activityCfg
	}
}

// WithDeepCopy makes element copy-construction duplicate pointers, maps and
// slices reachable from each element. Element types implementing Cloner keep
// using their own Clone method.
func WithDeepCopy() Option {
	return func(cfg *config) {
		cfg.deepCopy = true
	}
}

func applyOptions(opts []Option) *config {
	if len(opts) == 0 {
		return nil
	}
	cfg := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if len(cfg.hooks) > 0 {
		activityCfg := activity.Config{Enabled: true}
		if cfg.activityCfg != nil {
			activityCfg = *cfg.activityCfg
		}
		cfg.emitter = activity.NewEmitter(cfg.hooks, activityCfg)
	}
	return cfg
}

func (c *config) fatal() *fatal.Reporter {
	if c == nil || c.reporter == nil {
		return fatal.Default()
	}
	return c.reporter
}

func (c *config) activity() *activity.Emitter {
	if c == nil {
		return nil
	}
	return c.emitter
}

func (c *config) deep() bool {
	return c != nil && c.deepCopy
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
