package main

import "fitviz/internal/cli"

func main() {
	cli.Execute()
}
