package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly 表示不含時間的日期欄位，JSON 以 YYYY-MM-DD 格式序列化
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(value string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

// GormDataType 讓 GORM 將此型別對應到 date 欄位
func (DateOnly) GormDataType() string {
	return "date"
}
