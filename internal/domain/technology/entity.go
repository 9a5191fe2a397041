package technology

import "time"

type Category string

const (
	CategoryFirstRow  Category = "firstRow"
	CategorySecondRow Category = "secondRow"
)

func (c Category) Valid() bool {
	return c == CategoryFirstRow || c == CategorySecondRow
}

const DefaultColorClass = "text-gray-500"

type Technology struct {
	ID         string
	Name       string
	IconString string
	ColorClass string
	Category   Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
