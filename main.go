// Package main is the entry point for the mutareport CLI.
package main

import "gooze.dev/pkg/mutareport/cmd"

func main() {
	cmd.Execute()
}
