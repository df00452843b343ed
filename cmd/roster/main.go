package main

import "github.com/mmynk/roster/internal/cli"

func main() {
	cli.Execute()
}
