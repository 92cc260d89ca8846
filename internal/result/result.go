// Package result holds the outcome of write and authentication operations.
//
// A Result is either a Success or a Failure. The two variants share no
// fields, so a failed result can never carry data or a generated id.
package result

import "net/http"

type Kind int

const (
	Validation Kind = iota + 1
	NotFound
	Unauthorized
	Conflict
	Storage
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Unauthorized:
		return "unauthorized"
	case Conflict:
		return "conflict"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

type Result interface {
	OK() bool
	Msg() string
	sealed()
}

// Success is the outcome of an operation that went through. ID is set only
// when the operation created a row.
type Success struct {
	Message string
	Data    any
	ID      int64
}

func (Success) OK() bool { return true }
func (s Success) Msg() string { return s.Message }
func (Success) sealed() {}

func (s Success) GeneratedID() (int64, bool) {
	return s.ID, s.ID > 0
}

type Failure struct {
	Kind    Kind
	Message string
}

func (Failure) OK() bool { return false }
func (f Failure) Msg() string { return f.Message }
func (Failure) sealed() {}

func (f Failure) Error() string {
	return f.Kind.String() + ": " + f.Message
}

func OK(message string) Result {
	return Success{Message: message}
}

func OKWithData(message string, data any) Result {
	return Success{Message: message, Data: data}
}

func OKWithID(message string, id int64) Result {
	return Success{Message: message, ID: id}
}

func Fail(kind Kind, message string) Result {
	return Failure{Kind: kind, Message: message}
}

// Response is the JSON body every write and auth endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	ID      *int64 `json:"idx,omitempty"`
}

func ToResponse(r Result) Response {
	switch v := r.(type) {
	case Success:
		resp := Response{Success: true, Message: v.Message, Data: v.Data}
		if id, ok := v.GeneratedID(); ok {
			resp.ID = &id
		}
		return resp
	case Failure:
		return Response{Success: false, Message: v.Message}
	default:
		return Response{Success: false, Message: "unknown result"}
	}
}

// Status maps a result to the HTTP status a handler should answer with.
// created selects 201 for a successful create.
func Status(r Result, created bool) int {
	f, ok := r.(Failure)
	if !ok {
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	}
	switch f.Kind {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func KindOf(r Result) (Kind, bool) {
	f, ok := r.(Failure)
	if !ok {
		return 0, false
	}
	return f.Kind, true
}
