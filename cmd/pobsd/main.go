package main

import "pobsd/internal/cli"

func main() {
	cli.Execute()
}
