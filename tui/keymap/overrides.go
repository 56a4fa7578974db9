package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/cardvice/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides replaces the keys of every key.Binding field of km (a
// pointer to a struct) named in overrides. Config names are the snake_case
// field names, e.g. ToggleSelfCare is "toggle_self_care"; fields of embedded
// structs are included. The help description is kept and the first key
// becomes the help label.
//
// The sorted names that matched no binding are returned so callers can warn
// about typos.
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) []string {
	if len(overrides) == 0 {
		return nil
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil
	}

	used := make(map[string]bool, len(overrides))
	walkBindings(v.Elem(), func(name string, field reflect.Value) {
		keys, ok := overrides[name]
		if !ok || len(keys) == 0 {
			return
		}
		used[name] = true
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpLabel(keys[0]), current.Help().Desc),
		)))
	})

	var unknown []string
	for name := range overrides {
		if !used[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// walkBindings calls fn for every settable key.Binding field, recursing into
// embedded structs.
func walkBindings(v reflect.Value, fn func(name string, field reflect.Value)) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		sf := t.Field(i)
		if !field.CanSet() {
			continue
		}
		switch {
		case sf.Anonymous && field.Kind() == reflect.Struct:
			walkBindings(field, fn)
		case sf.Type == bindingType:
			fn(camelToSnake(sf.Name), field)
		}
	}
}

// helpLabel is the name shown in help for a key string.
func helpLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// camelToSnake converts a CamelCase field name to snake_case, e.g.
// ToggleDailyHabits -> toggle_daily_habits.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
