package main

import (
	"os"

	"github.com/avc-dev/urlshort/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
