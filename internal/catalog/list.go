package catalog

import (
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
)

// ProductListFilters describe the supported filter knobs for the browse endpoint.
type ProductListFilters struct {
	BrandSlug      *string `json:"brand,omitempty"`
	CollectionSlug *string `json:"collection,omitempty"`
	Discounted     *bool   `json:"discounted,omitempty"`
	Featured       *bool   `json:"featured,omitempty"`
	PriceMinAMD    *int    `json:"price_min_amd,omitempty"`
	PriceMaxAMD    *int    `json:"price_max_amd,omitempty"`
	Query          string  `json:"q,omitempty"`
}

// ListProductsInput captures the inputs needed to paginate/filter the catalog.
type ListProductsInput struct {
	Filters    ProductListFilters
	Sort       enums.ProductSort
	Pagination pagination.Params
	// IncludeInactive is reserved for the admin surface; the public
	// browse path always filters to active rows.
	IncludeInactive bool
}
