package main

import "github.com/taskman-cli/taskman/cmd"

func main() {
	cmd.Execute()
}
