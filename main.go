package main

import (
	"os"

	"github.com/MOYIre/AiChat/launcher/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
