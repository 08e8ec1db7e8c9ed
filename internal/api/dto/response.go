package dto

// Response 统一返回结构
type Response struct {
	Code    int
	Message string
	Data    interface{}
}
