package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, which is
// helpful when several segment strings are bouncing through rounds of noding
// and their %p strings all blur together. Names are generated lazily and
// memoized forever; that leaks, but only if you're actually debugging.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
