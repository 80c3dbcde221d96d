package main

import "github.com/qrforge/qrforge/internal/cmd"

func main() {
	cmd.Execute()
}
