package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayquote/internal/app/dto"
	quoteapp "stayquote/internal/app/handlers/quote"
	"stayquote/internal/app/queries"
	"stayquote/internal/domain/shared/daterange"
)

type QuoteHandler struct {
	Queries queries.Bus
}

type quoteRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (h QuoteHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, err1 := dto.ParseDay(req.CheckIn)
	checkOut, err2 := dto.ParseDay(req.CheckOut)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be formatted YYYY-MM-DD"})
		return
	}
	query := quoteapp.GetQuoteQuery{
		PropertyID: c.Param("id"),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
	result, err := queries.Ask[quoteapp.GetQuoteQuery, dto.Quote](c.Request.Context(), h.Queries, query)
	if err != nil {
		switch {
		case errors.Is(err, daterange.ErrInvalidRange),
			errors.Is(err, quoteapp.ErrStayTooShort),
			errors.Is(err, quoteapp.ErrStayTooLong):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, quoteapp.ErrDatesUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ QuoteHTTP = QuoteHandler{}
