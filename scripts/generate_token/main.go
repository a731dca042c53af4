package main

import (
	"fmt"
	"log"
	"time"

	"solotravel-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AuthJWTSecret == "" {
		log.Fatalf("AUTH_JWT_SECRET not found in .env")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "traveler",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iss": "solotravel",
	})

	tokenString, err := token.SignedString([]byte(cfg.AuthJWTSecret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println("Generated API token (valid 30 days):")
	fmt.Println("-----------------------------------------------")
	fmt.Println(tokenString)
	fmt.Println("-----------------------------------------------")
	fmt.Println("\nUse it as: Authorization: Bearer <token>")
}
