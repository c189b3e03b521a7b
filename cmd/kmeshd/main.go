package main

import (
	"log"

	"github.com/elphtools/kmesh/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
