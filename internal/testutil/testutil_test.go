package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := WriteFiles(t, map[string]string{
		"a.hcl":        "node \"a\" {}\n",
		"nested/b.hcl": "node \"b\" {}\n",
	})

	data, err := os.ReadFile(filepath.Join(dir, "nested", "b.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "node \"b\" {}\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "a.hcl"))
}

func TestSafeBuffer(t *testing.T) {
	var buf SafeBuffer
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Fprintf(&buf, "line %02d\n", i)
		}()
	}
	wg.Wait()

	assert.Len(t, buf.String(), 20*len("line 00\n"))
}
