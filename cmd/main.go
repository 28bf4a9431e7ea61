package main

import (
	"github.com/gin-gonic/gin"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app"
	"github.com/penshopx/PUB-Latih-LMS1/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
