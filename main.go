package main

import "github.com/ridoystarlord/erd/cmd"

func main() {
	cmd.Execute()
}
