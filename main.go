package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/adventcli/aoc/cmd"
)

func main() {
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		os.Exit(1)
	}
}
