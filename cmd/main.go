package main

import (
	"os"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/app"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
)

func main() {
	config := configs.LoadConfig()
	application := app.NewAdsApplication(config)
	if err := application.Start(); err != nil {
		os.Exit(1)
	}
}
