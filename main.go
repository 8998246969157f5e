package main

import (
	"fmt"
	"os"

	"moonpump/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := cmd.Start(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "moonpump run into an error: %s\n", err)
		os.Exit(1)
	}
}
