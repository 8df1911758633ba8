package main

import (
	"log"

	"github.com/NVIDIA/verkey/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
