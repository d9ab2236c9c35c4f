package models

// Member mirrors the upstream member record. Field names and string typing
// follow the upstream wire format; the dashboard consumes them as-is.
type Member struct {
	MemberID              FlexInt `json:"member_id"`
	MemberIcafeID         FlexInt `json:"member_icafe_id"`
	MemberAccount         string  `json:"member_account"`
	MemberBalance         string  `json:"member_balance"`
	MemberBalanceBonus    string  `json:"member_balance_bonus"`
	MemberFirstName       string  `json:"member_first_name"`
	MemberLastName        string  `json:"member_last_name"`
	MemberBirthday        string  `json:"member_birthday"`
	MemberExpireTimeLocal string  `json:"member_expire_time_local"`
	MemberIsActive        FlexInt `json:"member_is_active"`
	MemberPhoto           string  `json:"member_photo"`
	MemberEmail           string  `json:"member_email"`
	MemberPhone           string  `json:"member_phone"`
	MemberIDCard          string  `json:"member_id_card"`
	MemberPoints          string  `json:"member_points"`
	MemberCreate          string  `json:"member_create"`
	MemberUpdate          string  `json:"member_update"`
	MemberGroupID         FlexInt `json:"member_group_id"`
}
