package main

import "markbookctl/cmd"

func main() {
	cmd.Execute()
}
