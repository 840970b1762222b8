package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo-cli/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(cli.ExitCode(err))
}
