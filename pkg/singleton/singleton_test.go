package singleton

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceIsShared(t *testing.T) {
	s1 := Instance()
	s2 := Instance()

	assert.Same(t, s1, s2, "both variables should contain the same instance")

	s1.Set("greeting", "hello")
	got, ok := s2.Get("greeting")
	assert.True(t, ok, "value set through one handle should be visible through the other")
	assert.Equal(t, "hello", got)
}

func TestInstanceUnderConcurrency(t *testing.T) {
	const goroutines = 32

	instances := make([]*Registry, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = Instance()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, instances[0], instances[i], "concurrent callers should all get the same instance")
	}
}
