package main

import (
	"github.com/nandemo-ya/mskgo/internal/mskctl/cmd"
)

func main() {
	cmd.Execute()
}
