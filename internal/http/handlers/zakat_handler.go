// README: Zakat calculator handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/zakat"
)

type ZakatHandler struct {
	calc *zakat.Calculator
}

func NewZakatHandler(calc *zakat.Calculator) *ZakatHandler {
	return &ZakatHandler{calc: calc}
}

type zakatReq struct {
	Kind zakat.Kind `json:"kind"`
	zakat.Assets
}

// Calculate handles POST /api/zakat.
func (h *ZakatHandler) Calculate(c *gin.Context) {
	var req zakatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.calc.Calculate(req.Kind, req.Assets)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Nisab handles GET /api/zakat/nisab.
func (h *ZakatHandler) Nisab(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.calc.Nisab())
}
