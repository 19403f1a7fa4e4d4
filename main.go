// Package main is the entry point for the suitegate CLI.
package main

import "suitegate.dev/pkg/suitegate/cmd"

func main() {
	cmd.Execute()
}
