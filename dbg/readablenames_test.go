package dbg

import (
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPointer))

	first := Name(int64(42))
	assert.NotEmpty(t, first)
	assert.True(t, unicode.IsUpper([]rune(first)[0]), "names are title cased: %q", first)
	assert.Equal(t, first, Name(int64(42)), "names are memoized")

	x := 1
	assert.Equal(t, Name(&x), Name(&x))
}

func TestNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	names := make([]string, 16)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = Name("shared")
		}(i)
	}
	wg.Wait()
	for _, name := range names {
		assert.Equal(t, names[0], name)
	}
}
