package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
	"github.com/sangkips/gestao-api/pkg/money"
)

// MoneyHandler exposes the currency helpers used by the front end
type MoneyHandler struct{}

// NewMoneyHandler creates a new money handler
func NewMoneyHandler() *MoneyHandler {
	return &MoneyHandler{}
}

// Format renders an amount for display
// @Summary Format amount
// @Tags money
// @Accept json
// @Produce json
// @Param request body request.FormatMoneyRequest true "Amount in reais"
// @Success 200 {object} response.APIResponse
// @Router /money/format [post]
func (h *MoneyHandler) Format(c *gin.Context) {
	var req request.FormatMoneyRequest
	if !bindJSON(c, &req) {
		return
	}

	response.OK(c, "Amount formatted", gin.H{
		"amount":    req.Amount,
		"formatted": money.Format(req.Amount),
		"brl":       money.FormatBRL(req.Amount),
	})
}

// Parse reads user-typed text such as "R$ 1.234,56"
// @Summary Parse amount
// @Tags money
// @Accept json
// @Produce json
// @Param request body request.MoneyTextRequest true "Text"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /money/parse [post]
func (h *MoneyHandler) Parse(c *gin.Context) {
	var req request.MoneyTextRequest
	if !bindJSON(c, &req) {
		return
	}

	amount, err := money.Parse(req.Text)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Amount parsed", gin.H{
		"amount":    amount,
		"formatted": money.FormatBRL(amount),
	})
}

// Mask applies the keystroke mask of the price inputs
// @Summary Mask amount input
// @Tags money
// @Accept json
// @Produce json
// @Param request body request.MoneyTextRequest true "Text"
// @Success 200 {object} response.APIResponse
// @Router /money/mask [post]
func (h *MoneyHandler) Mask(c *gin.Context) {
	var req request.MoneyTextRequest
	if !bindJSON(c, &req) {
		return
	}

	response.OK(c, "Amount masked", gin.H{"masked": money.MaskKeystrokes(req.Text)})
}
