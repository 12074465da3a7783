package dto

// CreateTaskRequest carries a new task. DueDate is either an RFC 3339
// timestamp or a YYYY-MM-DD date combined with Time.
type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Time        string `json:"time"`
	Category    string `json:"category"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Time        *string `json:"time"`
	Category    *string `json:"category"`
	Completed   *bool   `json:"completed"`
}

type ListTasksQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Sort     string `query:"sort"`
}
