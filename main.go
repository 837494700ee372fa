package main

import "github.com/solpayhq/solpay/cmd"

func main() {
	cmd.Execute()
}
