package main

import (
	"fmt"
	"os"

	"acs71020-go/cmd"
)

func main() {
	root := cmd.NewRootCommand(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "acs71020:", err)
		os.Exit(1)
	}
}
