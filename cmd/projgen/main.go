package main

import "projgen/internal/cli"

func main() {
	cli.Execute()
}
