package main

import (
	"context"
	"os"

	"github.com/willfong/flight-analytics/internal/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
