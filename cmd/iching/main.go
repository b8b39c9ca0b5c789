package main

import "github.com/martinmr/iching/internal/cli"

func main() {
	cli.Execute()
}
