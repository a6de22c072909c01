package enums

import "fmt"

// PageBlockType tags a block inside a builder page.
type PageBlockType string

const (
	PageBlockHero   PageBlockType = "hero"
	PageBlockText   PageBlockType = "text"
	PageBlockImage  PageBlockType = "image"
	PageBlockVideo  PageBlockType = "video"
	PageBlockList   PageBlockType = "list"
	PageBlockButton PageBlockType = "button"
)

var validPageBlockTypes = []PageBlockType{
	PageBlockHero,
	PageBlockText,
	PageBlockImage,
	PageBlockVideo,
	PageBlockList,
	PageBlockButton,
}

func (t PageBlockType) String() string {
	return string(t)
}

func (t PageBlockType) IsValid() bool {
	for _, candidate := range validPageBlockTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParsePageBlockType(value string) (PageBlockType, error) {
	for _, candidate := range validPageBlockTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page block type %q", value)
}
