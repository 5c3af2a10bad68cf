// Package shop holds record types for the analyzer tests.
package shop

import "time"

type Status int

const (
	Draft Status = iota
	Placed
)

func (s Status) String() string {
	if s == Placed {
		return "Placed"
	}
	return "Draft"
}

type Audit struct {
	CreatedAt time.Time
	UpdatedBy string
}

type Customer struct {
	Name  string
	Email *string
}

type Line struct {
	Sku      string `dict:"sku_code"`
	Quantity int
	Price    float64
}

type Order struct {
	Audit
	OrderId  string
	Status   Status
	Customer Customer
	Lines    []Line
	Gift     *Customer
	Tags     []string
	Window   [2]int
	Timeout  time.Duration
	Note     string `dict:",optional"`
	Retries  int    `dict:",default=3"`
	Secret   string `dict:"-"`
	Meta     map[string]string

	internal int
}

type Category struct {
	Name     string
	Parent   *Category
	Children []Category
}

type Blob []byte
