package models

// BillingLog is a single entry of the upstream billing log. Monetary and
// duration fields arrive as strings and are parsed by the consumer; the zero
// value of any field means the upstream omitted it.
type BillingLog struct {
	LogID            FlexInt `json:"log_id"`
	LogDate          string  `json:"log_date"`
	LogMemberAccount string  `json:"log_member_account"`
	LogPcName        string  `json:"log_pc_name"`
	LogEvent         string  `json:"log_event"`
	LogMoney         string  `json:"log_money"`
	LogCard          string  `json:"log_card"`
	LogBonus         string  `json:"log_bonus"`
	LogCoin          string  `json:"log_coin"`
	LogUsedSecs      string  `json:"log_used_secs"`
	LogDetails       string  `json:"log_details"`
	LogStaffName     string  `json:"log_staff_name"`
	LogDateLocal     string  `json:"log_date_local"`
}

// PagingInfo is the upstream pagination envelope. The upstream is known to
// serve page as a string while pages and total_records are numbers, hence FlexInt.
type PagingInfo struct {
	TotalRecords FlexInt `json:"total_records"`
	Pages        FlexInt `json:"pages"`
	Page         FlexInt `json:"page"`
}

// BillingLogPage is one fetched page of billing log entries. Pages are
// consumed immediately and discarded, never persisted.
type BillingLogPage struct {
	Logs   []BillingLog `json:"log_list"`
	Paging PagingInfo   `json:"paging_info"`
}

// LastPage reports whether the page's own metadata says there is nothing
// further to fetch.
func (p *BillingLogPage) LastPage() bool {
	return p.Paging.Page.Int() >= p.Paging.Pages.Int()
}
