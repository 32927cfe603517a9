package flume_test

import (
	"reflect"
	"strings"
)

func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func containsString(s, substr string) bool {
	return strings.Contains(s, substr)
}
