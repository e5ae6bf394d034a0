package dto

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	TotalCount *int   `json:"total_count,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
	Offset     *int   `json:"offset,omitempty"`
}

func OK(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Page(data any, totalCount, limit, offset int) Envelope {
	return Envelope{
		Success:    true,
		Data:       data,
		TotalCount: &totalCount,
		Limit:      &limit,
		Offset:     &offset,
	}
}

func Fail(errText, message string) Envelope {
	return Envelope{Success: false, Error: errText, Message: message}
}
