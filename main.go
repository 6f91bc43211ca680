package main

import "github.com/salvadorprieto/myshell/cmd"

func main() {
	cmd.Execute()
}
