package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitOffset(t *testing.T) {
	cases := []struct {
		name       string
		params     Params
		wantLimit  int
		wantOffset int
	}{
		{"defaults", Params{}, DefaultLimit, 0},
		{"page and limit", Params{Page: 3, Limit: 10}, 10, 20},
		{"page without limit", Params{Page: 2}, DefaultLimit, DefaultLimit},
		{"interval wins over page", Params{Interval: []int{40, 60}, Page: 9, Limit: 5}, 20, 40},
		{"interval from zero", Params{Interval: []int{0, 24}}, 24, 0},
		{"empty interval ignored", Params{Interval: []int{10, 10}, Limit: 5}, 5, 0},
		{"inverted interval ignored", Params{Interval: []int{30, 10}}, DefaultLimit, 0},
		{"negative start ignored", Params{Interval: []int{-5, 10}}, DefaultLimit, 0},
		{"negative limit falls back", Params{Limit: -1}, DefaultLimit, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := tc.params.LimitOffset()
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
