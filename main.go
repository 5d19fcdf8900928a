package main

import (
	"github.com/accumulo/accumulo-util/cmd"
)

func main() {
	cmd.Execute()
}
