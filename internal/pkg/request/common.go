package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PageParams carries the offset-style paging used by list endpoints.
// Size is a pointer so the handler can apply the configured default.
type PageParams struct {
	From int  `form:"from" binding:"min=0"`
	Size *int `form:"size" binding:"omitempty,gt=0"`
}

// SizeOr returns the requested size or def when none was sent.
func (p PageParams) SizeOr(def int) int {
	if p.Size == nil {
		return def
	}
	return *p.Size
}
