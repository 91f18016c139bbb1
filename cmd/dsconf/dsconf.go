package main

import (
	"log"

	"github.com/nasvillage-tools/dsconf/internal/handler"
)

func main() {
	handler.Initialize()

	dsc, err := handler.NewDsConfHandler()
	if err != nil {
		log.Fatalf("Error occurred on getting config: %e", err)
	}

	dsc.Handle()
}
