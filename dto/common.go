package dto

type PaginateInput struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps page/limit into usable defaults
func (p *PaginateInput) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}
}

func (p *PaginateInput) Offset() int {
	return (p.Page - 1) * p.Limit
}
