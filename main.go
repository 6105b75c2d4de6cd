package main

import (
	"os-scheduler/internal/cmd"
)

func main() {
	cmd.Execute()
}
