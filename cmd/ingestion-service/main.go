package main

import "invest-aml-engine/internal/bootstrap/ingestion"

// @title Invest AML Engine API
// @version 1.0
// @description Система AML-мониторинга транзакций инвестиционной платформы
// @host localhost:8080
// @BasePath /api/v1
func main() { ingestion.StartIngestionService() }
