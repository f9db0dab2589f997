package report

import "sync"

// Reporter carries the process-wide reporting state: the selected log level
// and whether any error has been displayed so far.  Its methods may be called
// from multiple goroutines; display operations are serialized by the mutex so
// multi-line messages never interleave.
type Reporter struct {
	m sync.Mutex

	// The selected log level.  This must be one of the enumerated log levels
	// below.
	logLevel int

	// Whether an error has been reported.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level.  The
// first call wins: later calls (eg. the driver's default after flag parsing)
// are ignored.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{logLevel: logLevel}
	}
}
