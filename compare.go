package tableview

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Ranks of CompareValues, values of a lower rank sort first.
const (
	rankNil = iota
	rankBool
	rankNumber // numeric kinds and strings that parse as numbers
	rankTime
	rankString
	rankOther
)

// CompareValues is the default ascending Comparator.
//
// Values are ranked first: nil, bool, numbers, time.Time, strings,
// everything else. Within a rank, numbers of any integer or float type
// and strings that parse as numbers compare numerically, bools with
// false < true, strings lexically and everything else by its fmt.Sprint
// string. Ranking keeps the ordering transitive across mixed values,
// for example "9" < "10" < "1a".
func CompareValues(a, b any) int {
	aRank, aNum := rank(a)
	bRank, bNum := rank(b)
	if aRank != bRank {
		return cmp.Compare(aRank, bRank)
	}
	switch aRank {
	case rankNil:
		return 0
	case rankBool:
		return compareBools(deref(a).Bool(), deref(b).Bool())
	case rankNumber:
		return aNum.compare(bNum)
	case rankTime:
		return deref(a).Interface().(time.Time).Compare(deref(b).Interface().(time.Time))
	case rankString:
		return strings.Compare(deref(a).String(), deref(b).String())
	}
	return strings.Compare(fmt.Sprint(deref(a).Interface()), fmt.Sprint(deref(b).Interface()))
}

func rank(value any) (int, numberValue) {
	v := deref(value)
	if ValueIsNil(v) {
		return rankNil, numberValue{}
	}
	if n, ok := number(v); ok {
		return rankNumber, n
	}
	switch v.Kind() {
	case reflect.Bool:
		return rankBool, numberValue{}
	case reflect.String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64); err == nil {
			return rankNumber, numberValue{kind: reflect.Float64, f: f}
		}
		return rankString, numberValue{}
	}
	if _, ok := v.Interface().(time.Time); ok {
		return rankTime, numberValue{}
	}
	return rankOther, numberValue{}
}

// deref returns the value a non nil pointer points to.
func deref(value any) reflect.Value {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

type numberValue struct {
	kind reflect.Kind // Int64, Uint64 or Float64
	i    int64
	u    uint64
	f    float64
}

func number(v reflect.Value) (n numberValue, ok bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numberValue{kind: reflect.Int64, i: v.Int(), f: float64(v.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numberValue{kind: reflect.Uint64, u: v.Uint(), f: float64(v.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return numberValue{kind: reflect.Float64, f: v.Float()}, true
	}
	return n, false
}

func (n numberValue) compare(o numberValue) int {
	switch {
	case n.kind == reflect.Int64 && o.kind == reflect.Int64:
		return cmp.Compare(n.i, o.i)
	case n.kind == reflect.Uint64 && o.kind == reflect.Uint64:
		return cmp.Compare(n.u, o.u)
	case n.kind == reflect.Int64 && o.kind == reflect.Uint64:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), o.u)
	case n.kind == reflect.Uint64 && o.kind == reflect.Int64:
		return -o.compare(n)
	}
	return cmp.Compare(n.f, o.f)
}
