package models

// GoalFundingRule is a fixed-monthly contribution toward a savings goal.
// Funding is always money leaving an account, so derived events are expenses
// regardless of the stored amount's sign.
type GoalFundingRule struct {
	ID          string `db:"id"`
	GoalID      string `db:"goal_id"`
	GoalName    string `db:"goal_name"`
	Scope       Scope  `db:"-"`
	AmountCents int64  `db:"fixed_cents"`
	DayOfMonth  int    `db:"day_of_month"`
	Currency    string `db:"currency"`
	Enabled     bool   `db:"enabled"`
}
