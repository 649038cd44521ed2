package common

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// ErrExtraJSONData 解析完成後仍有多餘的 token
var ErrExtraJSONData = errors.New("unexpected extra JSON data")

// ParseJSON 解析 JSON 字符串，數字保留為 json.Number
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return &ExtraDataError{Offset: dec.InputOffset()}
	}
	return nil
}

// ExtraDataError 第一個 JSON 值之後仍有資料
type ExtraDataError struct {
	Offset int64
}

func (e *ExtraDataError) Error() string {
	return ErrExtraJSONData.Error()
}

func (e *ExtraDataError) Is(target error) bool {
	return target == ErrExtraJSONData
}

// ErrorOffset 取得 JSON 解析錯誤的位元組位置，無法判斷時回傳 -1
func ErrorOffset(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	var extraErr *ExtraDataError
	if errors.As(err, &extraErr) {
		return extraErr.Offset
	}
	return -1
}

// ToJSON 將結構體轉換為 JSON 字符串
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
