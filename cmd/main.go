package main

import (
    "os"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/routes"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    r := routes.SetupRouter()
    r.Run(":" + port)
}
