package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notelite/notelite/pkg/notelite"
)

func main() {
	// SIGINT/SIGTERM cancel the context so the server shuts down gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := notelite.Main(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
