// Command chotto generates a batch of 75-ball bingo sheets: five concurrent
// per-column samplers, diversity-checked arrangements, JSON artifacts per
// sheet, and an optional SQLite run ledger.
//
// Usage:
//
//	chotto -sheets 100 -seed 42 -out output_sheets -ledger runs.db -preview
//
// Every flag can also be set through the environment (CHOTTO_SHEETS,
// CHOTTO_SEED, CHOTTO_OUTPUT_DIR, CHOTTO_LEDGER, CHOTTO_PREVIEW); flags win.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/chotto/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("chotto: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cfg); err != nil {
		log.Fatalf("chotto: %v", err)
	}
}
