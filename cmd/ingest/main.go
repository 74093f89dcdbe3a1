package main

import (
	"fmt"
	"os"

	"process-mining-service/cmd/ingest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
