package main

import (
	"fmt"
	"os"

	"studyforge/internal/cli"
	"studyforge/internal/config"
	"studyforge/internal/store"
	"studyforge/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}

func runTUI() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	var adapter store.Adapter
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		sqliteAdapter, err := store.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return err
		}
		defer sqliteAdapter.Close()
		adapter = sqliteAdapter
	default:
		adapter = store.NewFileAdapter(cfg.PlansPath())
	}

	st, err := store.Open(adapter)
	if err != nil {
		return err
	}

	return tui.Run(st, store.NewSessionLog(cfg.SessionLogPath()))
}
