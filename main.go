package main

import "github.com/habitpet/habitpet/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
