package main

import (
	"github.com/elphtools/kmesh/pkg/cli"
)

func main() {
	cli.Execute()
}
