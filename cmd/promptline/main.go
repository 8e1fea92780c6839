package main

import (
	"os"

	"github.com/grovetools/promptline/cli"
	"github.com/grovetools/promptline/cmd"
)

func main() {
	root := cmd.NewApp().NewRootCmd()

	if err := root.Execute(); err != nil {
		verbose, _ := root.PersistentFlags().GetBool("verbose")
		os.Exit(cli.NewErrorHandler(verbose).Handle(root, err))
	}
}
