package controllers

import (
	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/Govind-619/PaySphere/repository"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
)

// POST /payments
func CreatePayment(c *gin.Context) {
	var req models.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment validation failed: %v", err)
		utils.ValidationError(c, utils.ValidationFieldErrors(err))
		return
	}

	db := config.DB.WithContext(c.Request.Context())
	repo := repository.NewPaymentRepository(db)

	payment, err := repo.Create(&req)
	if err != nil {
		utils.LogError("Failed to create payment for order %s: %v", req.OrderID, err)
		utils.InternalServerError(c, "Internal server error")
		return
	}

	utils.LogInfo("Payment %d created for order %s", payment.ID, payment.OrderID)
	utils.Created(c, payment.ToResponse())
}
