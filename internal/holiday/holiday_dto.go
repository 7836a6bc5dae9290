package holiday

type SetHolidaysRequest struct {
	Month int   `json:"month" binding:"required"`
	Year  int   `json:"year" binding:"required"`
	Days  []int `json:"days"`
}

type HolidaysResponse struct {
	Month int   `json:"month"`
	Year  int   `json:"year"`
	Days  []int `json:"days"`
}
