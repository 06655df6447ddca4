package main

import "github.com/jssohel603-bot/football-game/internal/cli"

func main() {
	cli.Execute()
}
