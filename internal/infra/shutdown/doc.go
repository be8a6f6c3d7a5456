// Package shutdown coordinates process termination for surveyauth.
//
// It turns SIGINT/SIGTERM into context cancellation, so long-running
// work such as a large range generation can be abandoned, and runs
// registered exit hooks exactly once, in reverse registration order,
// under a timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.WithSignals(context.Background())
//	defer stop()
//	h.OnShutdown(flushMetrics)
//	defer h.Run()
package shutdown
