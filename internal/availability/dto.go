package availability

// GroupBy selects the aggregation axis for copy counts.
type GroupBy string

const (
	GroupByFilm      GroupBy = "film"
	GroupByStore     GroupBy = "store"
	GroupByFilmStore GroupBy = "film_store"
)

// Valid reports whether the group_by value is one this API serves.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByFilm, GroupByStore, GroupByFilmStore:
		return true
	}
	return false
}

// CopyStatus is the live state of one inventory copy. RentalID is set when
// the copy is out.
type CopyStatus struct {
	InventoryID uint   `json:"inventory_id"`
	FilmID      uint   `json:"film_id"`
	FilmTitle   string `json:"film_title"`
	StoreID     uint   `json:"store_id"`
	Available   bool   `json:"available"`
	RentalID    *uint  `json:"rental_id,omitempty"`
	CustomerID  *uint  `json:"customer_id,omitempty"`
}

// FilmAvailability partitions the copies of one film, optionally scoped to
// a single store.
type FilmAvailability struct {
	FilmID                uint   `json:"film_id"`
	FilmTitle             string `json:"film_title"`
	StoreID               *uint  `json:"store_id,omitempty"`
	IsAvailable           bool   `json:"is_available"`
	TotalCopies           int    `json:"total_copies"`
	AvailableCopies       int    `json:"available_copies"`
	RentedCopies          int    `json:"rented_copies"`
	AvailableInventoryIDs []uint `json:"available_inventory_ids"`
	RentedInventoryIDs    []uint `json:"rented_inventory_ids"`
}

// CheckResult answers a batch availability probe. Inventory IDs that do not
// exist are reported separately instead of failing the whole request.
type CheckResult struct {
	Copies                []CopyStatus `json:"copies"`
	AvailableInventoryIDs []uint       `json:"available_inventory_ids"`
	RentedInventoryIDs    []uint       `json:"rented_inventory_ids"`
	UnknownInventoryIDs   []uint       `json:"unknown_inventory_ids,omitempty"`
}

// CopyCountQuery parameterizes the inventory summary. FilmID and StoreID
// narrow the count; GroupBy picks the bucket axis.
type CopyCountQuery struct {
	FilmID  *uint
	StoreID *uint
	GroupBy GroupBy
}

// SummaryRow is one bucket of the inventory summary. The key columns that
// are not part of the grouping axis stay nil.
type SummaryRow struct {
	FilmID          *uint   `json:"film_id,omitempty"`
	FilmTitle       *string `json:"film_title,omitempty"`
	StoreID         *uint   `json:"store_id,omitempty"`
	TotalCopies     int     `json:"total_copies"`
	AvailableCopies int     `json:"available_copies"`
	RentedCopies    int     `json:"rented_copies"`
}

// Summary is the grouped inventory report.
type Summary struct {
	GroupBy GroupBy      `json:"group_by"`
	Rows    []SummaryRow `json:"rows"`
}
