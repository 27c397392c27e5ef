package main

import (
	"flag"
	"fmt"
	"log"

	"inspection-system/pkg/config"
	applogger "inspection-system/pkg/logger"
	"inspection-system/pkg/service"
)

// Печатает JWT для ручных запросов к API.
func main() {
	userID := flag.Int64("user", 1, "ID пользователя")
	companyID := flag.Int64("company", 1, "ID компании")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger("error", "")

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, logger)
	token, err := jwtSvc.GenerateToken(*userID, *companyID)
	if err != nil {
		log.Fatalf("не удалось выпустить токен: %v", err)
	}
	fmt.Println(token)
}
