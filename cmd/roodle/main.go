package main

import (
	"github.com/roodle/server/internal/cli"
)

func main() {
	cli.Execute()
}
