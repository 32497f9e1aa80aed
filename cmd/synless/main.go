package main

import (
	"os"

	"github.com/synless-editor/synless/internal/logging"
)

func main() {
	defer logging.RecoverBug()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
