package main

import "github.com/brogergvhs/postup/cmd"

func main() {
	cmd.Execute()
}
