package main

import "github.com/painterjd/driveyanutssolver/cmd"

func main() {
	cmd.Execute()
}
