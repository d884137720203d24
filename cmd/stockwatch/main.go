package main

import "github.com/mkadlec/stockwatch/internal/cli"

func main() {
	cli.Execute()
}
