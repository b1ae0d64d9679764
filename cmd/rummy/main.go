package main

import (
	"github.com/mcoot/rummy500-go/internal/cli"
)

func main() {
	cli.Execute()
}
