package types

import (
	"database/sql/driver"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
)

// PageBlock is one typed fragment of a builder page. Which optional
// fields carry meaning depends on Type: hero uses title/subtitle, text
// uses content, image/video use URL, button uses title (label), URL
// (link) and content (alignment), list uses content (newline items).
type PageBlock struct {
	ID       string              `json:"id"`
	Type     enums.PageBlockType `json:"type"`
	Title    *string             `json:"title,omitempty"`
	Subtitle *string             `json:"subtitle,omitempty"`
	Content  *string             `json:"content,omitempty"`
	URL      *string             `json:"url,omitempty"`
}

// PageBlocks is the ordered block list stored as a JSON column.
type PageBlocks []PageBlock

func (b PageBlocks) Value() (driver.Value, error) {
	if b == nil {
		return jsonValue(PageBlocks{})
	}
	return jsonValue(b)
}

func (b *PageBlocks) Scan(value any) error {
	if value == nil {
		*b = PageBlocks{}
		return nil
	}
	return jsonScan(value, b)
}
