package main

import (
	"os"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/config"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
