package domain

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "VALIDATION"
	ErrorCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrorCodeUpstream   ErrorCode = "UPSTREAM"
)

// DomainError carries the HTTP status a flow maps to, so the route
// boundary can translate without inspecting error text.
type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return e.Message
}
