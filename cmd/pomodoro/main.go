package main

import "github.com/AliAmouz/rustyPromodo/internal/cli"

func main() {
	cli.Execute()
}
