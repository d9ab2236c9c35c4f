package models

// PC is one workstation entry from the upstream PC list.
type PC struct {
	PcID            FlexInt `json:"pc_id"`
	PcIcafeID       FlexInt `json:"pc_icafe_id"`
	PcName          string  `json:"pc_name"`
	PcGroupName     string  `json:"pc_group_name"`
	PcStatus        string  `json:"pc_status"`
	PcInUsing       FlexInt `json:"pc_in_using"`
	PcMemberAccount string  `json:"pc_member_account"`
	PcIP            string  `json:"pc_ip"`
	PcMac           string  `json:"pc_mac"`
}

// ConsoleDetail is the detailed live status of one PC, including the current
// session if someone is logged in.
type ConsoleDetail struct {
	PcName              string  `json:"pc_name"`
	PcStatus            string  `json:"pc_status"`
	MemberAccount       string  `json:"member_account"`
	MemberBalance       string  `json:"member_balance"`
	LeftTime            string  `json:"left_time"`
	UsedSecs            FlexInt `json:"used_secs"`
	BillingRateName     string  `json:"billing_rate_name"`
	SessionStartedLocal string  `json:"session_started_local"`
}
