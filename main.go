package main

import "github.com/kamusis/skillswap/cmd"

func main() {
	cmd.Execute()
}
