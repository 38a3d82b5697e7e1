package main

import "patscan/internal/cli"

func main() {
	cli.Execute()
}
