package models

// PagingInfo describes one page over an ordered sequence.
type PagingInfo struct {
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
	TotalItems   int `json:"total_items"`
}

// TotalPages is ceil(TotalItems / ItemsPerPage); 0 when there is nothing to show.
func (p PagingInfo) TotalPages() int {
	if p.ItemsPerPage <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}

// Skip is the number of items preceding the current page.
func (p PagingInfo) Skip() int {
	if p.CurrentPage < 1 {
		return 0
	}
	return (p.CurrentPage - 1) * p.ItemsPerPage
}

// Take is the maximum number of items on a page.
func (p PagingInfo) Take() int {
	return p.ItemsPerPage
}

// PageLink is one entry of a pager.
type PageLink struct {
	Page     int    `json:"page"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
}

// PageLinks builds one link per page, marking the current one.
func (p PagingInfo) PageLinks(urlFor func(page int) string) []PageLink {
	total := p.TotalPages()
	links := make([]PageLink, 0, total)
	for i := 1; i <= total; i++ {
		links = append(links, PageLink{Page: i, URL: urlFor(i), Selected: i == p.CurrentPage})
	}
	return links
}

// PagingView is the JSON shape of paging metadata.
type PagingView struct {
	PagingInfo
	TotalPages int `json:"total_pages"`
}

func (p PagingInfo) View() PagingView {
	return PagingView{PagingInfo: p, TotalPages: p.TotalPages()}
}
