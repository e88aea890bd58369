package main

import "marando/cmd"

func main() {
	cmd.Execute()
}
