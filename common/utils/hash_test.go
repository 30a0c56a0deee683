package utils

import (
	"os"
	"path/filepath"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StrUniqueWithMaxLen(t *testing.T) {
	t.Run("should return the original string when it is not longer than max len", func(t *testing.T) {
		s := "totoro"
		maxLen := 6
		bestEffortHash := StrUniqueWithMaxLen(s, maxLen)
		assert.Equal(t, "totoro", bestEffortHash)
		assert.Equal(t, maxLen, len(bestEffortHash))
	})

	t.Run("should return first chars of the original string plus 3 chars from the hash when it is not longer than max len", func(t *testing.T) {
		s := "totoro"
		maxLen := 5
		bestEffortHash := StrUniqueWithMaxLen(s, maxLen)
		assert.Equal(t, maxLen, len(bestEffortHash))
		assert.Equal(t, "t-8bd", bestEffortHash)
	})

	t.Run("should return a readable name with an hash when passing a long string", func(t *testing.T) {
		s := "user-longlonglonglonglongname-aws-vm-test-with-totoro"
		maxLen := 32
		bestEffortHash := StrUniqueWithMaxLen(s, maxLen)
		assert.Equal(t, maxLen, len(bestEffortHash))
		assert.Equal(t, "user-longlonglonglonglongnam-47d", bestEffortHash)
	})
}

func Test_StrHash(t *testing.T) {
	assert.Equal(t, StrHash("foo", "bar"), StrHash("foo", "bar"))
	assert.NotEqual(t, StrHash("foo", "bar"), StrHash("foo", "baz"))
}

func FuzzStrUniqueWithMaxLen(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		fz := fuzz.NewFromGoFuzz(data)

		var s string
		var maxLen uint8
		fz.Fuzz(&s)
		fz.Fuzz(&maxLen)

		output := StrUniqueWithMaxLen(s, int(maxLen))
		if len(s) <= int(maxLen) {
			assert.Equal(t, s, output)
		} else {
			assert.Equal(t, int(maxLen), len(output))
		}
	})
}

func Test_FileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yml")
	require.NoError(t, os.WriteFile(path, []byte("services: {}"), 0o644))

	hash, err := FileHash(path)
	require.NoError(t, err)
	assert.Equal(t, StrHash("services: {}"), hash)

	_, err = FileHash(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
