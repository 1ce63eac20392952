package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/nbockisch/lifers/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("invalid configuration: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var g gameResult
	if config.Plain {
		g, err = runPlain(ctx, config, os.Stdout)
	} else {
		g, err = runScreen(ctx, config)
	}
	if err != nil {
		stop()
		log.Printf("%v", err)
		os.Exit(1)
	}

	displayFinalStats(os.Stdout, g)
}
