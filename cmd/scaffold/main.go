package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/scaffold"
)

func main() {
	if err := scaffold.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
