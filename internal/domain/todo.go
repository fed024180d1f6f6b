package domain

// Todo is the stored representation of a single task item.
// ID is assigned by the store on creation and never changes afterwards.
type Todo struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	IsComplete bool   `db:"is_complete"`
}
