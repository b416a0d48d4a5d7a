package dto

type ExpenseCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount" binding:"required"`
	Category    uint     `json:"category" binding:"required"`
	Month       string   `json:"month"`
	Year        string   `json:"year"`
	Admin       uint     `json:"admin" binding:"required"`
}

type ExpenseUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *uint    `json:"category"`
	Month       *string  `json:"month"`
	Year        *string  `json:"year"`
	Admin       *uint    `json:"admin"`
}

type ExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
