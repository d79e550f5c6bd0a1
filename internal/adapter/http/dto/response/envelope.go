package response

// The dashboard consumes two envelope shapes: single records as
// {success, data} and lists as {success, data: {data, total, totalPages}}
// where total/totalPages carry the server's pagination metadata.

type Item struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ListPayload struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type List struct {
	Success bool        `json:"success"`
	Data    ListPayload `json:"data"`
}

type Deleted struct {
	Success bool `json:"success"`
}

func NewItem(data any) Item {
	return Item{Success: true, Data: data}
}

func NewList(data any, total, totalPages int) List {
	return List{Success: true, Data: ListPayload{Data: data, Total: total, TotalPages: totalPages}}
}

func NewDeleted() Deleted {
	return Deleted{Success: true}
}
