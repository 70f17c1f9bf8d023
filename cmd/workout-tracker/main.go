package main

import (
	"os"

	"github.com/rcliao/workout-tracker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
