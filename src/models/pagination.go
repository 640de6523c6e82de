package models

import "math"

// PaginationParams ค่าการแบ่งหน้าจาก query string
type PaginationParams struct {
	Page  int `json:"page" query:"page" example:"1"`    // หมายเลขหน้าที่ต้องการ
	Limit int `json:"limit" query:"limit" example:"10"` // จำนวนรายการต่อหน้า
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
	}
}

// Normalize บังคับ page ≥ 1 และ limit ≥ 1
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// GetSkip จำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// PaginationMeta ข้อมูลการแบ่งหน้าที่ตอบกลับคู่กับ data
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPaginationMeta สร้าง meta จากจำนวนรายการทั้งหมด
func NewPaginationMeta(params PaginationParams, total int64) PaginationMeta {
	return PaginationMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}
}
