// Package main is the entry point for the jnetstats CLI tool, which loads
// jinteki.net game history exports and computes win-rate statistics.
package main

import "github.com/jnetstats/go-jnet-stats/cmd"

func main() {
	cmd.Execute()
}
