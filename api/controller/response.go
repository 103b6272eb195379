package controller

import "github.com/gin-gonic/gin"

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, ErrorBody{Code: code, Message: message})
}
