package logging

import (
	"github.com/pion/logging"
)

// Levels are configured through the environment, e.g. PION_LOG_DEBUG=all or
// PION_LOG_TRACE=videodifference/viewer.
var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for scope, prefixed with the program
// name so that scopes read as videodifference/<package>.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger("videodifference/" + scope)
}
