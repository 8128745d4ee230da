package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kk-code-lab/rselect/internal/prompt"
)

func main() {
	deps := defaultDeps()
	err := newRootCmd(deps).Execute()
	if err != nil && !errors.Is(err, prompt.ErrOperationCanceled) {
		fmt.Fprintf(deps.stderr, "rselect: %v\n", err)
	}
	os.Exit(exitCode(err))
}
