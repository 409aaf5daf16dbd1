package main

import "github.com/kbob/synthplan/pkg/cmd"

func main() {
	cmd.Execute()
}
