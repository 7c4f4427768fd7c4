package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayquote/internal/app/commands"
	"stayquote/internal/app/dto"
	hostapp "stayquote/internal/app/handlers/host"
	domainavailability "stayquote/internal/domain/availability"
)

type HostHandler struct {
	Commands commands.Bus
}

type blockDatesRequest struct {
	Dates  []string `json:"dates" binding:"required"`
	Reason string   `json:"reason"`
}

func (h HostHandler) BlockDates(c *gin.Context) {
	var req blockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := dto.ParseDay(raw)
		if err != nil || d.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be formatted YYYY-MM-DD"})
			return
		}
		dates = append(dates, d)
	}
	cmd := hostapp.BlockDatesCommand{PropertyID: c.Param("id"), Dates: dates, Reason: req.Reason}
	result, err := commands.Dispatch[hostapp.BlockDatesCommand, hostapp.BlockDatesResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h HostHandler) ReleaseDate(c *gin.Context) {
	date, err := dto.ParseDay(c.Param("date"))
	if err != nil || date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}
	cmd := hostapp.ReleaseDateCommand{PropertyID: c.Param("id"), Date: date}
	if _, err := commands.Dispatch[hostapp.ReleaseDateCommand, struct{}](c.Request.Context(), h.Commands, cmd); err != nil {
		if errors.Is(err, domainavailability.ErrDateNotBlocked) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type setRatesRequest struct {
	BaseNightlyCents int64 `json:"base_nightly_cents"`
	Overrides        []struct {
		Date    string `json:"date" binding:"required"`
		Cents   int64  `json:"cents"`
		Special bool   `json:"special"`
	} `json:"overrides"`
}

func (h HostHandler) SetRates(c *gin.Context) {
	var req setRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := hostapp.SetRatesCommand{
		PropertyID:       c.Param("id"),
		BaseNightlyCents: req.BaseNightlyCents,
	}
	if req.Overrides != nil {
		cmd.Overrides = make([]hostapp.RateOverrideInput, 0, len(req.Overrides))
		for _, o := range req.Overrides {
			d, err := dto.ParseDay(o.Date)
			if err != nil || d.IsZero() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "override dates must be formatted YYYY-MM-DD"})
				return
			}
			cmd.Overrides = append(cmd.Overrides, hostapp.RateOverrideInput{Date: d, Cents: o.Cents, Special: o.Special})
		}
	}
	if _, err := commands.Dispatch[hostapp.SetRatesCommand, struct{}](c.Request.Context(), h.Commands, cmd); err != nil {
		if errors.Is(err, domainavailability.ErrNegativeRate) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ HostHTTP = HostHandler{}
