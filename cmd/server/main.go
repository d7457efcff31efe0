package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yallaorder-next/internal/app"
)

func main() {
	mode := flag.String("mode", app.ModeAll, "run mode: all | api | worker")
	flag.Parse()

	runner, err := app.Bootstrap(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}
}
