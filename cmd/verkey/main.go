package main

import (
	"github.com/NVIDIA/verkey/pkg/cli"
)

func main() {
	cli.Execute()
}
