package main

import "secinstall/internal/app"

// @title Security Installation Operations API
// @version 1.0
// @description Back office for a security systems installation company.
// @BasePath /
func main() {
	app.Run()
}
