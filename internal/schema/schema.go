// Package schema содержит декларативные правила валидации входящих JSON-тел.
// Каждая сущность описывается таблицей правил поле→ограничения; правила
// применяются императивно и либо дают нормализованную запись, либо перечень
// нарушений по каждому полю сразу (без частичных/неоднозначных отказов).
package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Kind задаёт ожидаемый тип значения поля после декодирования JSON.
type Kind int

const (
	// KindString — строка.
	KindString Kind = iota
	// KindNumber — число (float64 после decode).
	KindNumber
	// KindInteger — целое число; дробные значения отклоняются.
	KindInteger
	// KindDate — строка календарной даты в формате YYYY-MM-DD.
	KindDate
	// KindIntegerList — список целых чисел (может быть пустым).
	KindIntegerList
)

const dateLayout = "2006-01-02"

// Rule описывает ограничения одного поля.
type Rule struct {
	Required bool
	Kind     Kind
	// MinLen/MaxLen применяются к строкам; нулевое значение — без ограничения.
	MinLen int
	MaxLen int
	// Min применяется к числам; nil — без нижней границы.
	Min *float64
}

// Definition — таблица правил одной сущности.
type Definition map[string]Rule

// FieldErrors перечисляет все нарушенные поля с причинами.
type FieldErrors map[string]string

// Error собирает нарушения в одну строку в стабильном порядке полей.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Record — нормализованные значения после успешной валидации.
// Строки хранятся как string, числа как float64, целые как int64,
// даты как time.Time, списки целых как []int64.
type Record map[string]any

func (r Record) String(field string) string {
	v, _ := r[field].(string)
	return v
}

func (r Record) Float(field string) float64 {
	v, _ := r[field].(float64)
	return v
}

func (r Record) Int(field string) int64 {
	v, _ := r[field].(int64)
	return v
}

func (r Record) Date(field string) time.Time {
	v, _ := r[field].(time.Time)
	return v
}

func (r Record) IntList(field string) []int64 {
	v, _ := r[field].([]int64)
	return v
}

// Validate применяет таблицу правил к декодированному JSON-объекту.
// Возвращает либо нормализованную запись, либо перечень нарушений
// по каждому проблемному полю. Неизвестные поля игнорируются.
func (d Definition) Validate(payload map[string]any) (Record, FieldErrors) {
	record := make(Record, len(d))
	errs := make(FieldErrors)

	for field, rule := range d {
		raw, present := payload[field]
		if !present || raw == nil {
			if rule.Required {
				errs[field] = "missing required field"
			}
			continue
		}

		value, msg := rule.check(raw)
		if msg != "" {
			errs[field] = msg
			continue
		}
		record[field] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}

// check нормализует одно значение по правилу и возвращает причину отказа,
// если значение не проходит.
func (r Rule) check(raw any) (any, string) {
	switch r.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		if n := len(s); r.MinLen > 0 && n < r.MinLen {
			return nil, fmt.Sprintf("must be at least %d characters long", r.MinLen)
		}
		if n := len(s); r.MaxLen > 0 && n > r.MaxLen {
			return nil, fmt.Sprintf("must be at most %d characters long", r.MaxLen)
		}
		return s, ""

	case KindNumber:
		f, ok := raw.(float64)
		if !ok {
			return nil, "must be a number"
		}
		if r.Min != nil && f < *r.Min {
			return nil, fmt.Sprintf("must be greater than or equal to %g", *r.Min)
		}
		return f, ""

	case KindInteger:
		n, ok := asInteger(raw)
		if !ok {
			return nil, "must be an integer"
		}
		if r.Min != nil && float64(n) < *r.Min {
			return nil, fmt.Sprintf("must be greater than or equal to %g", *r.Min)
		}
		return n, ""

	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a date string in YYYY-MM-DD format"
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, "must be a valid date in YYYY-MM-DD format"
		}
		return t, ""

	case KindIntegerList:
		list, ok := raw.([]any)
		if !ok {
			return nil, "must be a list of integers"
		}
		ids := make([]int64, 0, len(list))
		for _, item := range list {
			n, ok := asInteger(item)
			if !ok {
				return nil, "must be a list of integers"
			}
			ids = append(ids, n)
		}
		return ids, ""
	}

	return nil, "unsupported rule kind"
}

// asInteger принимает float64 из encoding/json и требует целого значения.
func asInteger(raw any) (int64, bool) {
	f, ok := raw.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func minValue(v float64) *float64 { return &v }
