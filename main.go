package main

import "github.com/Fepozopo/unbox/pkg/cli"

func main() {
	cli.RunCLI()
}
