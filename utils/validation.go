package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"EmoGoBackend/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators 让校验错误使用 JSON 字段名，并注册时间字段的 time 规则
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// 合法时间统一成 RFC3339，解析失败的保留原始文本
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			ts, ok := field.Interface().(models.Timestamp)
			if !ok {
				return nil
			}
			if ts.Err() != nil {
				return ts.Raw()
			}
			return ts.UTC().Format(time.RFC3339Nano)
		}, models.Timestamp{})
		_ = v.RegisterValidation("time", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.RFC3339Nano, fl.Field().String())
			return err == nil
		})
	})
}

// ValidationDetails 把绑定错误转换为字段级错误列表
func ValidationDetails(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, models.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: ruleMessage(fe),
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []models.FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s, got %s", jsonTypeName(typeErr.Type), typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []models.FieldError{{
			Field:   "body",
			Rule:    "json",
			Message: "request body must be a valid JSON object",
		}}
	}

	return []models.FieldError{{Field: "body", Rule: "invalid", Message: err.Error()}}
}

// fieldPath 去掉命名空间里的结构体名，CreateEmotionRequest.location.latitude -> location.latitude
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func ruleMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min", "gte":
		if isString {
			return fmt.Sprintf("length must be at least %s", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("length must be at most %s", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "time":
		return fmt.Sprintf("invalid time %v, expected RFC3339, ISO 8601 or Unix seconds", fe.Value())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}
