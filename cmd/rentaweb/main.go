package main

import "github.com/rentautos/rentaweb/cmd/rentaweb/command"

func main() {
	command.Execute()
}
