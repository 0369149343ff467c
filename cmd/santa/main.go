package main

import "secret_santa/internal/cli"

func main() {
	cli.Execute()
}
