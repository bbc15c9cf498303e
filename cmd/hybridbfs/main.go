package main

import "hybridbfs/cmd/hybridbfs/commands"

func main() {
	commands.Execute()
}
