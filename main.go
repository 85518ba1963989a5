package main

import (
	"github.com/kaushl12/TaskCanvas/app"
	_ "github.com/kaushl12/TaskCanvas/docs"
)

// @title TaskCanvas API
// @version 1.0
// @description Authenticated to-do list backend.
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
