package api

import (
	"log/slog"
	"net/http"

	reqdto "teetime-exchange/internal/handler/dto/request"
	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	reconciler commands.PaymentReconciler
	indexer    commands.InventoryIndexer
}

func NewWebhookHandler(reconciler commands.PaymentReconciler, indexer commands.InventoryIndexer) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, indexer: indexer}
}

// @Summary Payment webhook
// @Description Reconcile a payment orchestrator event against its cart
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment event"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *WebhookHandler) Payment(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.reconciler.ProcessWebhook(c.Request.Context(), req.ToEvent())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "payment webhook rejected",
			"event_type", req.EventType,
			"payment_id", req.Content.Object.PaymentID,
			"error", err)
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewWebhookResponse(res))
}

// @Summary Inventory webhook
// @Description Index upcoming tee times for the least recently indexed course
// @Tags webhooks
// @Produce json
// @Param X-Indexer-Secret header string true "Shared secret"
// @Success 200 {object} resdto.IndexResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /webhooks/inventory [post]
func (h *WebhookHandler) Inventory(c *gin.Context) {
	res, err := h.indexer.HandleWebhook(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewIndexResponse(res))
}
