package models

// Task represents our task model, mapping to the tasks table.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskPayload is the request body for create and update. The fields are
// pointers so a body that omits one of them decodes as incomplete rather
// than silently defaulting to "".
type TaskPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
