package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"localesync/internal/adapters/cli"
	"localesync/internal/domain"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		// The validate report already explains a validation failure.
		if !errors.Is(err, domain.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}
		os.Exit(1)
	}
}
