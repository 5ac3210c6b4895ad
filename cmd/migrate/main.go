package main

import (
	"log"
	"os"
	"tripdesk/config"
	"tripdesk/helper"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction (up/down/step-up/drop) is required")
	}

	if err := helper.Runner(config.Get(), helper.Direction(os.Args[1])); err != nil {
		log.Fatal(err)
	}
}
