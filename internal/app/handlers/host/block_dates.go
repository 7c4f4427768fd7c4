package host

import (
	"context"
	"time"

	"stayquote/internal/app/commands"
	"stayquote/internal/app/policies"
	domainavailability "stayquote/internal/domain/availability"
)

const (
	blockDatesKey  = "host.block_dates"
	releaseDateKey = "host.release_date"
)

type BlockDatesCommand struct {
	PropertyID string
	Dates      []time.Time
	Reason     string
}

func (c BlockDatesCommand) Key() string { return blockDatesKey }

type BlockDatesResult struct {
	Blocked int `json:"blocked"`
}

type BlockDatesHandler struct {
	Repo      domainavailability.Repository
	Publisher policies.EventPublisher
	Now       func() time.Time
}

func (h *BlockDatesHandler) Handle(ctx context.Context, cmd BlockDatesCommand) (BlockDatesResult, error) {
	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(cmd.PropertyID))
	if err != nil {
		return BlockDatesResult{}, err
	}
	before := len(cal.Blocked)
	cal.BlockDates(cmd.Dates, domainavailability.BlockReason(cmd.Reason), h.now())
	if err := h.Repo.Save(ctx, cal); err != nil {
		return BlockDatesResult{}, err
	}
	if err := policies.PublishRecorded(ctx, h.Publisher, cal); err != nil {
		return BlockDatesResult{}, err
	}
	return BlockDatesResult{Blocked: len(cal.Blocked) - before}, nil
}

type ReleaseDateCommand struct {
	PropertyID string
	Date       time.Time
}

func (c ReleaseDateCommand) Key() string { return releaseDateKey }

type ReleaseDateHandler struct {
	Repo      domainavailability.Repository
	Publisher policies.EventPublisher
	Now       func() time.Time
}

func (h *ReleaseDateHandler) Handle(ctx context.Context, cmd ReleaseDateCommand) (struct{}, error) {
	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(cmd.PropertyID))
	if err != nil {
		return struct{}{}, err
	}
	if err := cal.ReleaseDate(cmd.Date, h.now()); err != nil {
		return struct{}{}, err
	}
	if err := h.Repo.Save(ctx, cal); err != nil {
		return struct{}{}, err
	}
	if err := policies.PublishRecorded(ctx, h.Publisher, cal); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, nil
}

func (h *BlockDatesHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *ReleaseDateHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

var (
	_ commands.Handler[BlockDatesCommand, BlockDatesResult] = (*BlockDatesHandler)(nil)
	_ commands.Handler[ReleaseDateCommand, struct{}]        = (*ReleaseDateHandler)(nil)
)
