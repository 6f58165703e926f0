package main

import "tinyhttp/cmd"

func main() {
	cmd.Execute()
}
