package main

import (
	"log"

	"phoji-example/internal/cli"
)

func main() {
	// Defaults such as the sample file name can be overridden at build time via ldflags
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
