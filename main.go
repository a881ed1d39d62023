package main

import (
	"os"

	"github.com/praxis-engineering/retrofit/cmd"
	"github.com/praxis-engineering/retrofit/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
