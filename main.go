package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/xhd2015/shabda/run"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	err := run.Main(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
