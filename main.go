package main

import "insightflow-api/cmd"

func main() {
	cmd.Execute()
}
