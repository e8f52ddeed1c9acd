package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateInputNormalize(t *testing.T) {
	p := PaginateInput{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = PaginateInput{Page: 3, Limit: 20}
	p.Normalize()
	assert.Equal(t, 40, p.Offset())

	p = PaginateInput{Page: -1, Limit: 1000}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}
