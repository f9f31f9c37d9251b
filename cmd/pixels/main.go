package main

import "github.com/purefunctor/pixels/internal/cli"

func main() {
	cli.Execute()
}
