package main

import (
	"errors"
	"gataama/src/common"
	"gataama/src/config"
	"gataama/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func donationRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	donations := apiv1.Group("/donations")
	donations.
		POST("/checkout", func(ctx *gin.Context) {
			var body types.CreateDonationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			url, err := common.CreateDonationCheckout(ctx.Request.Context(), &body)
			if err != nil {
				log.Printf("Error on donation checkout: %s\n", err.Error())
				switch {
				case errors.Is(err, common.ErrInvalidAmount), errors.Is(err, common.ErrMissingFields):
					ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				case errors.Is(err, common.ErrCheckoutScreen):
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				default:
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": config.Get().GenericErrorMessage})
				}
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"url": url})
		}).
		GET("/webhook", func(ctx *gin.Context) {
			params := &common.WebhookParams{
				Status:        ctx.Query("status"),
				TxRef:         ctx.Query("tx_ref"),
				TransactionID: ctx.Query("transaction_id"),
			}
			message, err := common.ProcessPaymentWebhook(ctx.Request.Context(), params)
			if err != nil {
				log.Printf("Error on payment webhook [%s]: %s\n", params.TxRef, err.Error())
				switch {
				case errors.Is(err, common.ErrWalletNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
				case errors.Is(err, common.ErrEmailDelivery):
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				default:
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error with payment, kindly contact support"})
				}
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": message})
		}).
		GET("/currencies", func(ctx *gin.Context) {
			currencies, err := common.ListCurrencies()
			if err != nil {
				log.Printf("Error retrieving currencies: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": config.Get().GenericErrorMessage})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"currencies": currencies})
		}).
		GET("/admin/analytics", func(ctx *gin.Context) {
			wallets, transactions, err := common.GetAdminAnalytics()
			if err != nil {
				log.Printf("Error retrieving analytics: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": config.Get().GenericErrorMessage})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"wallets":      wallets,
				"transactions": transactions,
			})
		})
	return apiv1
}
