package main

import (
	"fmt"
	"os"

	"github.com/operator-framework/deduce/cmd/root"
	"github.com/operator-framework/deduce/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd := root.NewRootCmd(&cfg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
