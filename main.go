package main

import "fnotes/cmd"

func main() {
	cmd.Execute()
}
