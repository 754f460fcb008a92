package main

import "github.com/theirongolddev/refi/cmd"

func main() {
	cmd.Execute()
}
