package handlers

import (
	"net/http"

	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// STKPush prompts a phone for an M-Pesa payment.
func (h *Handler) STKPush(c *gin.Context) {
	var input models.STKPushInput

	// 1. Validate JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	// 2. Ask the provider to prompt the phone
	res, err := h.Payments.STKPush(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// 3. A non-zero ResponseCode is a declined prompt, not a server error
	if !res.Accepted() {
		utils.APIResponse(c, http.StatusBadRequest, false, res.CustomerMessage, res)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, res.CustomerMessage, res)
}

// MpesaCallback receives the STK result from Daraja. Daraja retries until
// it gets ResultCode 0 back, so unknown ids are acknowledged and logged.
func (h *Handler) MpesaCallback(c *gin.Context) {
	var callback payments.DarajaCallback

	// 1. Decode the Daraja body
	if err := c.ShouldBindJSON(&callback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ResultCode": 1, "ResultDesc": "Invalid JSON"})
		return
	}

	checkoutID := callback.CheckoutRequestID()
	status := callback.Status()
	h.Logger.Info("mpesa callback received",
		zap.String("checkout_request_id", checkoutID),
		zap.Int("result_code", callback.Body.StkCallback.ResultCode),
		zap.String("mapped_status", status),
	)

	// 2. Settle the payment and its application
	if err := h.Payments.SettleByProviderRef(c.Request.Context(), checkoutID, status); err != nil {
		if !apperr.IsKind(err, apperr.NotFound) {
			h.Logger.Error("mpesa callback not settled", zap.String("checkout_request_id", checkoutID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ResultCode": 1, "ResultDesc": "Failed to record payment"})
			return
		}
		h.Logger.Warn("mpesa callback for unknown payment", zap.String("checkout_request_id", checkoutID))
	}

	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

// MidtransNotification receives Midtrans webhook calls. order_id is our
// payment reference.
func (h *Handler) MidtransNotification(c *gin.Context) {
	var notification payments.MidtransNotification

	// 1. Decode JSON from Midtrans
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	// 2. Only notifications signed with our server key are trusted
	if !notification.Verify(h.MidtransServerKey) {
		h.Logger.Warn("midtrans notification signature rejected", zap.String("order_id", notification.OrderID))
		utils.APIResponse(c, http.StatusForbidden, false, "Invalid signature", nil)
		return
	}

	// 3. Map the Midtrans state to ours
	status := notification.Status()
	h.Logger.Info("midtrans notification received",
		zap.String("order_id", notification.OrderID),
		zap.String("transaction_status", notification.TransactionStatus),
		zap.String("fraud_status", notification.FraudStatus),
		zap.String("mapped_status", status),
	)

	// 4. Update the payment and its application
	if err := h.Payments.Settle(c.Request.Context(), notification.OrderID, status); err != nil {
		h.Logger.Warn("midtrans notification not settled", zap.String("order_id", notification.OrderID), zap.Error(err))
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Notification processed", gin.H{"status": status})
}
