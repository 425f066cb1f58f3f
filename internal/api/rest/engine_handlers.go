package rest

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/redis"
	"invest-aml-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// EngineHandlers содержит обработчики REST API AML-движка.
// Redis опционален: без него endpoint статистики сканирований недоступен.
type EngineHandlers struct {
	scanService        services.ScanService
	alertService       services.AlertService
	riskService        services.RiskService
	dashboardService   services.DashboardService
	transactionService services.TransactionService
	redisClient        redis.ClientInterface
}

// Создает новые обработчики REST API движка
func NewEngineHandlers(
	scanService services.ScanService,
	alertService services.AlertService,
	riskService services.RiskService,
	dashboardService services.DashboardService,
	transactionService services.TransactionService,
	redisClient redis.ClientInterface,
) *EngineHandlers {
	return &EngineHandlers{
		scanService:        scanService,
		alertService:       alertService,
		riskService:        riskService,
		dashboardService:   dashboardService,
		transactionService: transactionService,
		redisClient:        redisClient,
	}
}

// ScanTransaction запускает сканирование одной транзакции
// @Summary Просканировать транзакцию
// @Description Прогоняет транзакцию через AML-правила и сохраняет созданные алерты. Повторное сканирование создает новый набор алертов.
// @Tags scans
// @Accept json
// @Produce json
// @Param transaction_id path string true "ID транзакции"
// @Success 200 {object} models.ScanResponse "Результат сканирования"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /scans/transactions/{transaction_id} [post]
func (h *EngineHandlers) ScanTransaction(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	response, err := h.scanService.ScanTransaction(transactionID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan transaction"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScanBatch запускает пакетное сканирование недавних транзакций
// @Summary Запустить пакетное сканирование
// @Description Сканирует все транзакции за hours_back часов. Тело запроса опционально, без него используется окно по умолчанию.
// @Tags scans
// @Accept json
// @Produce json
// @Param request body models.BatchScanRequest false "Параметры сканирования"
// @Success 200 {object} models.BatchScanSummary "Итог пакетного сканирования"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /scans/batch [post]
func (h *EngineHandlers) ScanBatch(c *gin.Context) {
	var req models.BatchScanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	summary, err := h.scanService.ScanRecentTransactions(req.HoursBack)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run batch scan"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListAlerts возвращает страницу алертов по фильтру
// @Summary Получить список алертов
// @Description Возвращает алерты с фильтрацией по статусу, серьезности и пользователю, с пагинацией
// @Tags alerts
// @Accept json
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Param severity query string false "Фильтр по серьезности"
// @Param user_id query string false "Фильтр по пользователю"
// @Param page query int false "Номер страницы" default(1)
// @Param page_size query int false "Размер страницы" default(20)
// @Success 200 {object} models.AlertListResponse "Страница алертов"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts [get]
func (h *EngineHandlers) ListAlerts(c *gin.Context) {
	filter := &models.AlertFilter{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
		UserID:   c.Query("user_id"),
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil {
			filter.Page = parsed
		}
	}
	if sizeStr := c.Query("page_size"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil {
			filter.PageSize = parsed
		}
	}

	response, err := h.alertService.ListAlerts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get alerts"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAlert возвращает алерт по идентификатору
// @Summary Получить алерт
// @Description Возвращает алерт по alert_id
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert_id path string true "ID алерта"
// @Success 200 {object} models.Alert "Алерт"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/{alert_id} [get]
func (h *EngineHandlers) GetAlert(c *gin.Context) {
	alertID := c.Param("alert_id")

	alert, err := h.alertService.GetAlert(alertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get alert"})
		return
	}

	if alert == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, alert)
}

// GetAlertAudit возвращает журнал ревью алерта
// @Summary Получить журнал ревью алерта
// @Description Возвращает записи журнала ревью в хронологическом порядке
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert_id path string true "ID алерта"
// @Success 200 {object} map[string]interface{} "Записи журнала"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/{alert_id}/audit [get]
func (h *EngineHandlers) GetAlertAudit(c *gin.Context) {
	alertID := c.Param("alert_id")

	entries, err := h.alertService.ListAuditEntries(alertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert_id": alertID, "entries": entries})
}

// ReviewAlert выполняет ревью алерта
// @Summary Выполнить ревью алерта
// @Description Переводит алерт в целевой статус и добавляет запись в журнал ревью
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert_id path string true "ID алерта"
// @Param review body models.ReviewAlertRequest true "Действие ревьюера"
// @Success 200 {object} models.ReviewConfirmation "Подтверждение ревью"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/{alert_id}/review [post]
func (h *EngineHandlers) ReviewAlert(c *gin.Context) {
	alertID := c.Param("alert_id")

	var req models.ReviewAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.alertService.ReviewAlert(alertID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review alert"})
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// GetUserRiskReport возвращает риск-отчет пользователя
// @Summary Получить риск-отчет пользователя
// @Description Вычисляет риск-отчет пользователя из текущего состояния реестра и алертов
// @Tags risk
// @Accept json
// @Produce json
// @Param user_id path string true "ID пользователя"
// @Success 200 {object} models.RiskReport "Риск-отчет"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /users/{user_id}/risk-report [get]
func (h *EngineHandlers) GetUserRiskReport(c *gin.Context) {
	userID := c.Param("user_id")

	report, err := h.riskService.GetUserRiskReport(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build risk report"})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboard возвращает сводку для дашборда комплаенса
// @Summary Получить сводку дашборда
// @Description Возвращает агрегированные счетчики алертов, пользователей повышенного риска и последние алерты
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} models.DashboardStats "Сводка дашборда"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dashboard [get]
func (h *EngineHandlers) GetDashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetScanStats возвращает счетчики сканирований из Redis
// @Summary Получить статистику сканирований
// @Description Возвращает накопленные счетчики сканирований и алертов по серьезности
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int64 "Счетчики сканирований"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Service Unavailable - Redis недоступен"
// @Router /stats/scans [get]
func (h *EngineHandlers) GetScanStats(c *gin.Context) {
	if h.redisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Scan statistics are not available"})
		return
	}

	stats, err := h.redisClient.GetScanStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get scan stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ClearTransactions очищает реестр транзакций и данные сканирований
// @Summary Очистить транзакции и данные сканирований
// @Description Удаляет все транзакции из реестра и кешированные результаты сканирований. Endpoint для стендов и демонстраций.
// @Tags transactions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Данные очищены"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [delete]
func (h *EngineHandlers) ClearTransactions(c *gin.Context) {
	if err := h.transactionService.ClearAllTransactions(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear transactions"})
		return
	}

	if h.redisClient != nil {
		if err := h.redisClient.ClearScanData(); err != nil {
			log.Printf("Warning: Failed to clear Redis scan data: %v", err)
		}
	}

	logger.LogEvent(logger.EventRegistryCleared, "aml-engine-service", "sqlite", map[string]interface{}{
		"action": "registry_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All transactions and scan data cleared successfully",
		"clear_storage": true,
	})
}
