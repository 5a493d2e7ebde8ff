package main

import "github.com/devicelab-dev/uilocator/pkg/cli"

func main() {
	cli.Execute()
}
