package main

import "github.com/mouse-blink/marks/cmd"

func main() {
	cmd.Execute()
}
