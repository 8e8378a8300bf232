package main

import (
	"os"

	"github.com/vipcxj/ranges/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
