package category

type Category struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"productCount"`
}
