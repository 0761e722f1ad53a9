package main

import "github.com/visionffe/visionffe-api/internal/app"

func main() {
	err := app.NewVisionApp().Run()
	if err != nil {
		panic(err)
	}
}
