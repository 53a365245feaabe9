package main

import (
	"os"

	"github.com/Ning0612/fspreview/cmd/fspreview/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
