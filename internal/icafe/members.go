package icafe

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
)

const resourceMembers = "members"

// maxMemberFanOut bounds how many member pages are fetched concurrently once
// page 1 has revealed the total page count.
const maxMemberFanOut = 4

// memberPage is the data payload of the paged member listing.
type memberPage struct {
	Members []models.Member   `json:"members"`
	Paging  models.PagingInfo `json:"paging_info"`
}

// memberDetail wraps a single member record.
type memberDetail struct {
	Member models.Member `json:"member"`
}

// AllMembers returns every member of the cafe. Page 1 reveals the total page
// count; the remaining pages are fetched concurrently and merged in page
// order. The member set itself is order-independent, but a stable merge keeps
// the listing deterministic for the cache.
func (c *Client) AllMembers(ctx context.Context) ([]models.Member, error) {
	first, err := c.memberPage(ctx, 1)
	if err != nil {
		return nil, err
	}

	pages := first.Paging.Pages.Int()
	if pages <= 1 {
		return first.Members, nil
	}

	pageResults := make([][]models.Member, pages+1)
	pageResults[1] = first.Members

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, maxMemberFanOut)

	for page := 2; page <= pages; page++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p, err := c.memberPage(ctx, page)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			pageResults[page] = p.Members
		}(page)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	members := make([]models.Member, 0, first.Paging.TotalRecords.Int())
	for page := 1; page <= pages; page++ {
		members = append(members, pageResults[page]...)
	}
	loggers.Ctx(ctx).Debug().Msgf("fetched %d members across %d pages", len(members), pages)
	return members, nil
}

func (c *Client) memberPage(ctx context.Context, page int) (*memberPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	env, err := c.fetchPage(ctx, resourceMembers, query)
	if err != nil {
		return nil, err
	}

	var p memberPage
	if err := decodeData(env, resourceMembers, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// MemberByID looks up a single member. A 404 from the upstream surfaces as
// ErrUpstreamNotFound.
func (c *Client) MemberByID(ctx context.Context, memberID int) (*models.Member, error) {
	resource := fmt.Sprintf("%s/%d", resourceMembers, memberID)

	env, err := c.fetchPage(ctx, resource, nil)
	if err != nil {
		return nil, err
	}

	var detail memberDetail
	if err := decodeData(env, resource, &detail); err != nil {
		return nil, err
	}
	return &detail.Member, nil
}

// MemberByAccount finds the member whose account name matches exactly.
// The upstream search is a substring match, so results are filtered here;
// no exact match means ErrUpstreamNotFound.
func (c *Client) MemberByAccount(ctx context.Context, account string) (*models.Member, error) {
	query := url.Values{}
	query.Set("search_text", account)

	env, err := c.fetchPage(ctx, resourceMembers, query)
	if err != nil {
		return nil, err
	}

	var p memberPage
	if err := decodeData(env, resourceMembers, &p); err != nil {
		return nil, err
	}

	for i := range p.Members {
		if p.Members[i].MemberAccount == account {
			return &p.Members[i], nil
		}
	}
	return nil, fmt.Errorf("%w: member account %q", ErrUpstreamNotFound, account)
}
