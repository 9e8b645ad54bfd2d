package repository

import "encoding/json"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a window of rows. Total is filled in by the query.
type Page struct {
	Limit  int
	Offset int
	Total  int
}

func NewPage(offset, limit int) *Page {
	page := &Page{Offset: offset, Limit: limit}
	if page.Offset < 0 {
		page.Offset = 0
	}
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	} else if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	return page
}

func (self Page) PrevOffset() *int {
	offset := self.Offset - self.Limit
	if offset < 0 {
		offset = 0
	}
	if offset == self.Offset {
		return nil
	}
	return &offset
}

func (self Page) NextOffset() *int {
	offset := self.Offset + self.Limit
	if offset >= self.Total {
		return nil
	}
	return &offset
}

func (self *Page) MarshalJSON() ([]byte, error) {
	if self == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]int{
		"offset": self.Offset,
		"limit":  self.Limit,
		"total":  self.Total,
	})
}
