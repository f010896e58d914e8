package main

import "divyang/cmd/dv/root"

func main() {
	root.Execute()
}
