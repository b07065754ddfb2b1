package main

import "reviewboard/internal/app"

func main() {
	app.Run()
}
