package util

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// BindParams decodes the body into a typed request, silently dropping any
// unknown fields. Used where the schema is deliberately permissive (login).
func BindParams[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, err
	}

	return params, nil
}

// BindParamsStrict rejects bodies carrying fields the schema does not
// declare. Used for registration and task payloads.
func BindParamsStrict[T any](c *gin.Context) (T, error) {
	var params T

	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&params); err != nil {
		return params, err
	}

	return params, nil
}
