package main

import "github.com/skalski/macroquest/cmd/macroquest"

func main() {
	macroquest.Execute()
}
