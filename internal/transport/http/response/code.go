package response

// 直接沿用 HTTP 语义的状态码
const (
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
)

// MsgInternal 对外的兜底文案；内部细节只进日志
const MsgInternal = "Error interno del servidor"
