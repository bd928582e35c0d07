package models

// ProductsListView is one page of the storefront listing.
type ProductsListView struct {
	Products        []Product  `json:"products"`
	PagingInfo      PagingInfo `json:"paging_info"`
	CurrentCategory string     `json:"current_category,omitempty"`
}

// CategoryMenu is the navigation list with the highlighted entry.
type CategoryMenu struct {
	Categories       []string `json:"categories"`
	SelectedCategory string   `json:"selected_category,omitempty"`
}
