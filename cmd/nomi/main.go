package main

import "nomi/cmd/nomi/cmd"

func main() {
	cmd.Execute()
}
