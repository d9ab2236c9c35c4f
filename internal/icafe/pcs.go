package icafe

import (
	"context"
	"net/url"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
)

const (
	resourcePCs           = "pcs"
	resourceConsoleDetail = "pcs/action/consoleDetail"
)

// PCList returns the list and status of all PCs. An unexpectedly shaped data
// payload is logged and degrades to an empty list; the PC listing has a safe
// default where the ranking pipeline does not.
func (c *Client) PCList(ctx context.Context) ([]models.PC, error) {
	env, err := c.fetchPage(ctx, resourcePCs, nil)
	if err != nil {
		return nil, err
	}

	var pcs []models.PC
	if err := decodeData(env, resourcePCs, &pcs); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("pc list response structure unexpected, returning empty list")
		return []models.PC{}, nil
	}
	return pcs, nil
}

// ConsoleDetail returns the live status of one PC. A 404 or an empty data
// payload means the PC is unknown; the former surfaces as ErrUpstreamNotFound
// and the latter as (nil, nil).
func (c *Client) ConsoleDetail(ctx context.Context, pcName string) (*models.ConsoleDetail, error) {
	query := url.Values{}
	query.Set("pc_name", pcName)

	env, err := c.fetchPage(ctx, resourceConsoleDetail, query)
	if err != nil {
		return nil, err
	}

	if !env.hasData() {
		return nil, nil
	}

	var detail models.ConsoleDetail
	if err := decodeData(env, resourceConsoleDetail, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
