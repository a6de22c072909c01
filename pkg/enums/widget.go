package enums

import "fmt"

// WidgetType tags a home screen widget's content kind.
type WidgetType string

const (
	WidgetTypeImage WidgetType = "image"
	WidgetTypeVideo WidgetType = "video"
	WidgetTypeText  WidgetType = "text"
)

var validWidgetTypes = []WidgetType{
	WidgetTypeImage,
	WidgetTypeVideo,
	WidgetTypeText,
}

func (t WidgetType) String() string {
	return string(t)
}

func (t WidgetType) IsValid() bool {
	for _, candidate := range validWidgetTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParseWidgetType(value string) (WidgetType, error) {
	for _, candidate := range validWidgetTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid widget type %q", value)
}

// WidgetLayout is how a widget spans the home grid.
type WidgetLayout string

const (
	WidgetLayoutFull WidgetLayout = "full"
	WidgetLayoutHalf WidgetLayout = "half"
)

var validWidgetLayouts = []WidgetLayout{WidgetLayoutFull, WidgetLayoutHalf}

func (l WidgetLayout) String() string {
	return string(l)
}

func (l WidgetLayout) IsValid() bool {
	for _, candidate := range validWidgetLayouts {
		if candidate == l {
			return true
		}
	}
	return false
}

func ParseWidgetLayout(value string) (WidgetLayout, error) {
	for _, candidate := range validWidgetLayouts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid widget layout %q", value)
}
