package main

import "github.com/mj1618/rotary-nav/cmd"

func main() {
	cmd.Execute()
}
