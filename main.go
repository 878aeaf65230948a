package main

import "github.com/dotcommander/dqview/cmd"

func main() {
	cmd.Execute()
}
