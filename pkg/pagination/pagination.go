// Package pagination converts page/limit or explicit interval query
// parameters into SQL limit/offset pairs.
package pagination

const DefaultLimit = 24

// Params holds the pagination fields shared by list endpoints. Interval, when
// set, is an explicit [offset, end) pair and takes precedence over
// page/limit.
type Params struct {
	Interval []int
	Page     int
	Limit    int
}

// LimitOffset resolves the effective limit and offset.
func (p Params) LimitOffset() (limit, offset int) {
	if len(p.Interval) == 2 && p.Interval[1] > p.Interval[0] && p.Interval[0] >= 0 {
		return p.Interval[1] - p.Interval[0], p.Interval[0]
	}
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if p.Page > 1 {
		offset = (p.Page - 1) * limit
	}
	return limit, offset
}
