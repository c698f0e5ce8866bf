package dbg

import (
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary keys into random readable names, so that log lines
// about the same sampling run or input polygon are easy to pick out. It
// flagrantly leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it.

var (
	mu    sync.Mutex
	memo  map[interface{}]string
	title cases.Caser
)

func init() {
	memo = make(map[interface{}]string)
	title = cases.Title(language.English)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for key, making one up the first time. key
// must be comparable.
func Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[key] = r
	return r
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	switch v := reflect.ValueOf(key); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
