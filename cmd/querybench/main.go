package main

import (
	"os"

	"github.com/querybench/querybench/command"
	"github.com/querybench/querybench/logger"
)

func main() {
	if err := command.Execute(); err != nil {
		logger.Fatal(err)
	}
	os.Exit(0)
}
