package main

import "github.com/dotcommander/stackpick/cmd"

func main() {
	cmd.Execute()
}
