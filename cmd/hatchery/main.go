package main

import "github.com/aalvaropc/hatchery/internal/cli"

func main() {
	cli.Execute()
}
