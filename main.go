package main

import (
	"os"

	"github.com/marblesj/wace-student-trainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
