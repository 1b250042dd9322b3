package main

import "github.com/bright-shard/boml/cmd"

func main() {
	cmd.Execute()
}
