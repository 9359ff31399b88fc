package models

// DynamicListItem is a single selectable code/label pair
type DynamicListItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// DynamicList mirrors the case store's selected-value-plus-options structure
type DynamicList struct {
	Value     *DynamicListItem  `json:"value,omitempty"`
	ListItems []DynamicListItem `json:"list_items,omitempty"`
}

// SelectedCode returns the code of the selected item, or "" when nothing is
// selected
func (d *DynamicList) SelectedCode() string {
	if d == nil || d.Value == nil {
		return ""
	}
	return d.Value.Code
}

// NewDynamicList builds a single-item list with that item selected
func NewDynamicList(code, label string) *DynamicList {
	item := DynamicListItem{Code: code, Label: label}
	return &DynamicList{Value: &item, ListItems: []DynamicListItem{item}}
}
