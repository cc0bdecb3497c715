package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stdout, "ERROR:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg, os.Stdout, os.Stderr)
	cmd := newRootCommand(a, args)
	return cmd.Execute()
}
