package main

import "github.com/docnova/go-docnova-client/cmd"

func main() {
	cmd.Execute()
}
