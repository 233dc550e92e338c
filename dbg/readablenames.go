package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for debug output. Mesh handles are small integers that get
// recycled whenever a triangulation is rebuilt, so each mesh owns a Namer and
// resets it with the arena. Names are generated on first use and never freed.

func init() {
	// Names are handed out in order of demand, so make them differ between
	// runs. The same name in two runs is not the same thing.
	petname.NonDeterministicMode()
}

type Namer struct {
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]bool
}

func (n *Namer) Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.memo == nil {
		n.memo = make(map[interface{}]string)
		n.used = make(map[string]bool)
	}
	if name, ok := n.memo[obj]; ok {
		return name
	}
	name := fresh()
	for n.used[name] {
		name = fresh()
	}
	n.memo[obj] = name
	n.used[name] = true
	return name
}

// Forget every name handed out so far.
func (n *Namer) Reset() {
	n.mu.Lock()
	n.memo = nil
	n.used = nil
	n.mu.Unlock()
}

var global Namer

// Name for values that live for the whole run, like pointers.
func Name(obj interface{}) string {
	return global.Name(obj)
}

func fresh() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
