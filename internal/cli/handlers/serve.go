package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/server"
)

// Serve runs the HTTP server until ctx is canceled
func Serve(ctx context.Context, deps *cli.Deps, addr string) {
	_, _ = fmt.Fprintf(deps.Stdout, "Serving on http://%s (Ctrl+C to stop)\n", addr)
	if err := server.New(deps.Services, deps.Logger).ListenAndServe(ctx, addr); err != nil {
		fail(deps, "HTTP server stopped", err, "Check that the address is free: "+addr)
	}
}
