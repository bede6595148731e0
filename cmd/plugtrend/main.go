// main is the entry point for the plugtrend CLI.
package main

import (
	"os"

	"github.com/huangsam/plugtrend/cmd"
	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Could not stop profiling cleanly", profErr)
	}

	if err != nil {
		contract.LogError("Command failed", err)
		iocache.CloseCaching()
		os.Exit(1)
	}
}
