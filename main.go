package main

import "EmoGoBackend/cli"

func main() {
	cli.Execute()
}
