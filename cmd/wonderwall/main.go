package main

import (
	"wonderwall/internal/cli"
)

func main() {
	cli.Execute()
}
