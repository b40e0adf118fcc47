package dto

import "encoding/json"

// Nullable distinguishes an omitted JSON key from an explicit null, so edit
// endpoints can apply one uniform policy for optional attributes:
// omitted = unchanged, explicit null = clear.
type Nullable[T any] struct {
	Set   bool // key was present in the payload
	Valid bool // value was non-null
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Valid, n.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a nullable column pointer: nil when the payload
// carried an explicit null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// PageQuery is the normalized pagination contract shared by every listing
// endpoint: page starts at 1, pageSize is the row count per page.
type PageQuery struct {
	Page     int `form:"page,default=1"      validate:"min=1"`
	PageSize int `form:"pageSize,default=20" validate:"min=1,max=100"`
}

// TotalPages computes the page count for a listing response.
func TotalPages(totalRecords int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := totalRecords / int64(pageSize)
	if totalRecords%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}

// Deleted is the response for delete endpoints; the id lets clients
// invalidate local caches.
type Deleted struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// IdentityItem is the minimal id+name projection for UI pickers.
type IdentityItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
