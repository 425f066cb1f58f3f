package rest

import (
	"errors"
	"net/http"
	"strconv"

	"invest-aml-engine/internal/generator"
	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers содержит обработчики REST API сервиса приема
type Handlers struct {
	transactionService services.TransactionService
	userService        services.UserService
	generator          *generator.TransactionGenerator
}

// Создает новые обработчики REST API
func NewHandlers(transactionService services.TransactionService, userService services.UserService) *Handlers {
	return &Handlers{
		transactionService: transactionService,
		userService:        userService,
		generator:          generator.NewTransactionGenerator(),
	}
}

// SubmitTransaction обрабатывает POST запрос на прием транзакции
// @Summary Принять транзакцию в реестр
// @Description Принимает транзакцию в реестр платформы. Завершенные транзакции публикуются в Kafka и асинхронно сканируются AML-движком.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.SubmitTransactionRequest true "Данные транзакции"
// @Success 201 {object} models.SubmitTransactionResponse "Транзакция принята"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [post]
func (h *Handlers) SubmitTransaction(c *gin.Context) {
	var req models.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Логируем получение транзакции
	logger.LogEvent(logger.EventTransactionReceived, "ingestion-service", "api", map[string]interface{}{
		"transaction_id": req.TransactionID,
		"type":           req.Type,
		"amount":         req.Amount,
	})

	response, err := h.transactionService.SubmitTransaction(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit transaction"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListTransactions возвращает список транзакций реестра
// @Summary Получить список транзакций
// @Description Возвращает последние транзакции реестра
// @Tags transactions
// @Accept json
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список транзакций"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	transactions, err := h.transactionService.ListTransactions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTransaction возвращает транзакцию по идентификатору
// @Summary Получить транзакцию
// @Description Возвращает транзакцию реестра по transaction_id
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "ID транзакции"
// @Success 200 {object} models.Transaction "Транзакция"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions/{transaction_id} [get]
func (h *Handlers) GetTransaction(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	tx, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction"})
		return
	}

	if tx == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// ClearTransactions очищает реестр транзакций
// @Summary Очистить все транзакции
// @Description Удаляет все транзакции из реестра. Endpoint для стендов и демонстраций.
// @Tags transactions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Транзакции очищены"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [delete]
func (h *Handlers) ClearTransactions(c *gin.Context) {
	if err := h.transactionService.ClearAllTransactions(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear transactions"})
		return
	}

	logger.LogEvent(logger.EventRegistryCleared, "ingestion-service", "sqlite", map[string]interface{}{
		"action": "registry_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All transactions cleared successfully",
		"clear_storage": true,
	})
}

// GenerateTransactions генерирует демонстрационные транзакции
// @Summary Сгенерировать демонстрационные транзакции
// @Description Генерирует транзакции для тестирования. Без параметра scenario возвращает одну случайную транзакцию, с параметром - пакет сценария (clean, high_value, structuring, rapid_movement, new_user). Данные не сохраняются.
// @Tags transactions
// @Accept json
// @Produce json
// @Param scenario query string false "Демонстрационный сценарий"
// @Success 200 {object} map[string]interface{} "Сгенерированные данные"
// @Router /transactions/generate [get]
func (h *Handlers) GenerateTransactions(c *gin.Context) {
	scenario := c.Query("scenario")
	if scenario == "" {
		tx := h.generator.GenerateRandomTransaction()
		c.JSON(http.StatusOK, gin.H{"transaction": tx})
		return
	}

	batch := h.generator.GenerateScenario(scenario)
	c.JSON(http.StatusOK, batch)
}

// RegisterUser обрабатывает POST запрос на регистрацию профиля пользователя
// @Summary Зарегистрировать профиль пользователя
// @Description Сохраняет профиль пользователя в каталоге платформы
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.RegisterUserRequest true "Данные пользователя"
// @Success 201 {object} models.UserProfile "Профиль зарегистрирован"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /users [post]
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser возвращает профиль пользователя
// @Summary Получить профиль пользователя
// @Description Возвращает профиль пользователя из каталога по user_id
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "ID пользователя"
// @Success 200 {object} models.UserProfile "Профиль пользователя"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /users/{user_id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := h.userService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
