package entity

type Hotel struct {
	Base
	Name  string `db:"name"`
	Image string `db:"image"`
}
