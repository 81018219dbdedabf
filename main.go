package main

import "github.com/knockscan/knock/cmd"

func main() {
	cmd.Execute()
}
