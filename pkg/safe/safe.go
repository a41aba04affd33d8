package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes fn and converts any panic into an error log instead of
// tearing down the process. Used for fire-and-forget goroutines.
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", "safe.Run"),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn()
}
