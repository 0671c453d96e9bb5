package main

import (
	"log"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fdg312/caloric-api/internal/config"
	"github.com/fdg312/caloric-api/internal/httpserver"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	server := httpserver.New(cfg)

	log.Fatal(server.Start())
}

// printStartupBanner logs a one-time summary of the resolved configuration.
func printStartupBanner(cfg *config.Config) {
	log.Println("======== Caloric Expenditure API ========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  port             = %d", cfg.Port)
	log.Printf("  log_level        = %s", cfg.LogLevel)

	log.Println("---- cors ----")
	log.Printf("  allowed_origins  = %s", describeOrigins(cfg.CORSAllowedOrigins))
	log.Printf("  allow_credentials = %t", cfg.CORSAllowCredentials)

	log.Println("---- rate limit ----")
	if cfg.RateLimitRPS > 0 {
		log.Printf("  rps              = %d", cfg.RateLimitRPS)
		log.Printf("  burst            = %d", cfg.RateLimitBurst)
	} else {
		log.Printf("  (disabled)")
	}

	log.Println("=========================================")
}

func describeOrigins(origins []string) string {
	if len(origins) == 0 {
		return "(none — browsers will be blocked)"
	}
	return strings.Join(origins, ", ")
}
