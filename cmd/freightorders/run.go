package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/fx"
)

const stopTimeout = 30 * time.Second

// run starts app, blocks until ctx is cancelled or app requests shutdown and returns the
// process exit code. Start is bounded by the app's start timeout, not by ctx.
func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "failed to build application: %v\n", err)
		return 1
	}
	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return code
}
