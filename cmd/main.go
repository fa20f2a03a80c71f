package main

import (
	"forkful/config"
	"forkful/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
