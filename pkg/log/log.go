// Package log builds the zap loggers ulispc's commands use, grounded on
// the teacher's pkg/consensus logger construction.
package log

import "go.uber.org/zap"

// New builds a console-encoded logger. verbose selects development mode
// (debug level, caller/stacktrace enabled); otherwise it's production
// mode (info level, no caller/stacktrace), matching the teacher's
// DisableCaller/DisableStacktrace convention for a component logger.
func New(verbose bool) (*zap.Logger, error) {
	var cc zap.Config
	if verbose {
		cc = zap.NewDevelopmentConfig()
	} else {
		cc = zap.NewProductionConfig()
		cc.DisableCaller = true
		cc.DisableStacktrace = true
	}
	cc.Encoding = "console"

	l, err := cc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("module", "ulispc")), nil
}
