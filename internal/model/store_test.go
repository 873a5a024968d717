package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinProductIDs(t *testing.T) {
	assert.Equal(t, "3,7,9", JoinProductIDs([]int64{3, 7, 9}))
	assert.Equal(t, "42", JoinProductIDs([]int64{42}))
	assert.Equal(t, "", JoinProductIDs(nil))

	// Caller order is preserved, not sorted at write time.
	assert.Equal(t, "9,3", JoinProductIDs([]int64{9, 3}))
}

func TestSplitProductIDs(t *testing.T) {
	ids, err := SplitProductIDs("3,7,9")
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 9}, ids)

	ids, err = SplitProductIDs("")
	assert.NoError(t, err)
	assert.Nil(t, ids)

	_, err = SplitProductIDs("3,x,9")
	assert.Error(t, err)
}
