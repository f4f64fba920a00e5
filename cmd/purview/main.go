package main

import (
	"os"

	"github.com/catalogkit/purview-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
