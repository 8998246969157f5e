package cmd

import (
	"fmt"
	"strings"

	"moonpump/internal/config"
)

const usage = `usage: moonpump <command> [flags]

commands:
  serve         run the HTTP API, registry sync and token watcher (default)
  quote         quote a swap through the trader contract
  buy           buy a token with native currency
  sell          sell a token for native currency
  collect-fees  collect creator fees of a token
  launch        create a token and its pool
  auth          sign in to the API and print a session token`

// Start dispatches to the command named by args[0].
func Start(args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	command := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		return serve()
	case "quote":
		return quote(args)
	case "buy", "sell":
		return tradeCommand(command, args)
	case "collect-fees":
		return collectFees(args)
	case "launch":
		return launch(args)
	case "auth":
		return auth(args)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}
