package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	employeeKeys = []string{"employeeId", "employee_id", "EmployeeID", "email"}
	nameKeys     = []string{"name", "full_name", "fullName", "Name"}
	categoryKeys = []string{"category", "Category"}
	salaryKeys   = []string{"salary", "Salary", "basic_salary"}
	presentKeys  = []string{"present", "Present"}
	absentKeys   = []string{"absent", "Absent", "leave"}
	amountKeys   = []string{"amount", "Amount", "loan"}
)

type record map[string]any

// decodeRecords accepts a bare JSON array or an {ok, data} envelope around one.
func decodeRecords(body []byte) ([]record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrShape)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	switch body[0] {
	case '[':
		var rows []record
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		return rows, nil
	case '{':
		var env struct {
			Ok   *bool           `json:"ok"`
			Data json.RawMessage `json:"data"`
		}
		if err := dec.Decode(&env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		if env.Ok != nil && !*env.Ok {
			return nil, ErrRejected
		}
		data := bytes.TrimSpace(env.Data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			return []record{}, nil
		}
		if data[0] != '[' {
			return nil, fmt.Errorf("%w: data is not a list", ErrShape)
		}
		return decodeRecords(data)
	default:
		return nil, fmt.Errorf("%w: body is neither a list nor an object", ErrShape)
	}
}

func (r record) lookup(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r record) str(keys []string) string {
	v, ok := r.lookup(keys)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// num reads numbers and numeric strings. Anything else, including NaN and Inf, is missing.
func (r record) num(keys []string) (float64, bool) {
	v, ok := r.lookup(keys)
	if !ok {
		return 0, false
	}
	var f float64
	var err error
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
