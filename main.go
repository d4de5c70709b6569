package main

import (
	"github.com/lantern-cms/lantern/cmd"
)

func main() {
	cmd.Execute()
}
