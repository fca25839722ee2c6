/*
Copyright (c) 2024 sh4869221b <sh4869221b@gmail.com>
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sh4869221b/go-ft-tqdm/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.ExecuteContext(ctx)
}
