package main

import (
	"fmt"
	"os"

	"github.com/MrSnakeDoc/curator/cmd/curator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ curator: %v\n", err)
		os.Exit(1)
	}
}
