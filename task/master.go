package task

// MasterData is the reference bundle returned by the create-init endpoint.
// It populates selection controls and resolves display names; the client
// never writes to it.
type MasterData struct {
	Works     []MasterItem `json:"works"`
	CarModels []MasterItem `json:"carModels"`
	Colors    []MasterItem `json:"colors"`
	Users     []MasterItem `json:"users"`
}

// MasterItem is a generic reference-table row. Which display fields are set
// depends on the table: work types carry Content, car models Name and
// Number, colors Code and ColorCode, users Name.
type MasterItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name,omitempty"`
	Content   string `json:"content,omitempty"`
	Number    string `json:"number,omitempty"`
	Code      string `json:"code,omitempty"`
	ColorCode string `json:"color_code,omitempty"`
}

// Label returns the item's primary display string.
func (item MasterItem) Label() string {
	switch {
	case item.Content != "":
		return item.Content
	case item.Name != "":
		return item.Name
	case item.Code != "":
		return item.Code
	default:
		return ""
	}
}

// FindItem returns the item with the given id, if present.
func FindItem(items []MasterItem, id int) (MasterItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return MasterItem{}, false
}
