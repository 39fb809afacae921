package main

import (
	"log"
	"os"

	"github.com/goliatone/go-seo/internal/cli"
)

func main() {
	app := cli.NewApp(cli.Options{})
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("seo-head: %v", err)
	}
}
