package main

import (
	"context"
	"fmt"
	"os"

	"resume-builder/internal/adapter/cli"
)

func main() {
	if err := cli.NewRenderCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
