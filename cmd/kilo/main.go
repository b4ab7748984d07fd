package main

import (
	"fmt"
	"os"

	"github.com/JackWReid/kilo/internal/config"
	"github.com/JackWReid/kilo/internal/editor"
	"github.com/JackWReid/kilo/internal/logutil"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := logutil.SetOutputFile(os.Getenv("KILO_LOG")); err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	filename := ""
	if len(args) > 0 {
		filename = args[0]
	}
	return editor.NewApp(cfg, filename).Run()
}
