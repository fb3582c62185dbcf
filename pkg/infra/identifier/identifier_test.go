package identifier_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/xcsbridge/pkg/infra/identifier"
)

func TestUUID(t *testing.T) {
	gen := identifier.NewUUID()

	id := gen.NewID()
	gt.V(t, id).Equal(strings.ToUpper(id))

	parsed, err := uuid.Parse(id)
	gt.NoError(t, err)
	gt.V(t, parsed.Version()).Equal(uuid.Version(4))

	gt.V(t, gen.NewID()).NotEqual(id)
}

func TestUUID_Concurrent(t *testing.T) {
	gen := identifier.NewUUID()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = map[string]struct{}{}
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.NewID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	gt.V(t, len(seen)).Equal(32)
}

func TestFixed(t *testing.T) {
	gen := identifier.Fixed("FIXED-ID")
	gt.V(t, gen.NewID()).Equal("FIXED-ID")
	gt.V(t, gen.NewID()).Equal("FIXED-ID")
}
