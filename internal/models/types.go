package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray 以 JSON 文本落库的字符串数组，用于关键词等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = StringArray{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported StringArray source type %T", value)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		*s = StringArray{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(s))
}

// Clone 深拷贝
func (s StringArray) Clone() StringArray {
	if s == nil {
		return nil
	}
	out := make(StringArray, len(s))
	copy(out, s)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
