package main

import "github.com/insightscodes/devlog/cmd"

func main() {
	cmd.Execute()
}
