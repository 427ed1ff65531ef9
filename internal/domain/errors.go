package domain

import "fmt"

// Error 业务错误，Code 直接用 HTTP 语义
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) *Error  { return &Error{Code: 400, Msg: msg} }
func Validation(msg string) *Error  { return &Error{Code: 400, Msg: msg} }
func Conflict(msg string) *Error    { return &Error{Code: 400, Msg: msg} }
func Unauthorized(msg string) *Error { return &Error{Code: 401, Msg: msg} }
func Forbidden(msg string) *Error   { return &Error{Code: 403, Msg: msg} }
func NotFound(msg string) *Error    { return &Error{Code: 404, Msg: msg} }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: 404, Msg: fmt.Sprintf(format, args...)}
}

func Internal(msg string, err error) *Error {
	return &Error{Code: 500, Msg: msg, Err: err}
}

// InsufficientStock 库存不足；文案对外可见，保持稳定
func InsufficientStock(name string, available int) *Error {
	return &Error{Code: 400, Msg: fmt.Sprintf(
		"Stock insuficiente para el producto: %s. Stock disponible: %d", name, available)}
}
