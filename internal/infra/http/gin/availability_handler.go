package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayquote/internal/app/dto"
	availabilityapp "stayquote/internal/app/handlers/availability"
	"stayquote/internal/app/queries"
	domainavailability "stayquote/internal/domain/availability"
)

type AvailabilityHandler struct {
	Queries queries.Bus
}

func (h AvailabilityHandler) Calendar(c *gin.Context) {
	propertyID := c.Param("id")
	month, err := parseMonth(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be formatted YYYY-MM"})
		return
	}
	query := availabilityapp.GetCalendarQuery{PropertyID: propertyID, Year: month.Year(), Month: month.Month()}
	result, err := queries.Ask[availabilityapp.GetCalendarQuery, dto.Calendar](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type resolveClickRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Clicked  string `json:"clicked" binding:"required"`
	Hover    string `json:"hover"`
}

func (h AvailabilityHandler) ResolveClick(c *gin.Context) {
	var req resolveClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, err1 := dto.ParseDay(req.CheckIn)
	checkOut, err2 := dto.ParseDay(req.CheckOut)
	clicked, err3 := dto.ParseDay(req.Clicked)
	hover, err4 := dto.ParseDay(req.Hover)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || clicked.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be formatted YYYY-MM-DD"})
		return
	}
	query := availabilityapp.ResolveClickQuery{
		PropertyID: c.Param("id"),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Clicked:    clicked,
		Hover:      hover,
	}
	result, err := queries.Ask[availabilityapp.ResolveClickQuery, dto.Selection](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseMonth(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01", raw)
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, domainavailability.ErrCalendarNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

var _ AvailabilityHTTP = AvailabilityHandler{}
