package main

import "github.com/PavaniTiago/sleep-coach-api/cmd/sleepctl/root"

func main() {
	root.Execute()
}
