package main

import "github.com/gnames/srameta/cmd"

func main() {
	cmd.Execute()
}
