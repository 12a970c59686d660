package main

import (
	"os"

	"macchanger/presentation/runners/changer"
)

func main() {
	runner := changer.NewRunner(changer.NewDefaultDependencies())
	os.Exit(runner.Run(os.Args[1:]))
}
