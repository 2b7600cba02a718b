package main

import (
	"os"

	venxcmder "github.com/venxlabs/venx/cmd/venx"
)

func main() {
	cmd := venxcmder.NewVenxCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
