package main

import (
	"AdminDeck/cmd"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/version"
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx := context.Background()

	// Recover from logger.FatalError so deferred cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintf(os.Stderr, "%s did not finish running successfully.\n", version.ApplicationName)
		}
	}()

	flags, err := cmd.Parse(os.Args[1:])
	if errors.Is(err, cmd.ErrHelp) {
		cmd.PrintHelp()
		return 0
	}
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		return 1
	}

	return cmd.Execute(ctx, flags)
}
