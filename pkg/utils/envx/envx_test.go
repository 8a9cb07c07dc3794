package envx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("PEROVSKITE_TEST_KEY", "value")
	assert.Equal(t, "value", Get("PEROVSKITE_TEST_KEY", "default"))

	t.Setenv("PEROVSKITE_TEST_KEY", "")
	assert.Equal(t, "default", Get("PEROVSKITE_TEST_KEY", "default"))
	assert.Equal(t, "default", Get("PEROVSKITE_TEST_MISSING_KEY", "default"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("PEROVSKITE_TEST_INT", "64")
	assert.Equal(t, 64, GetInt("PEROVSKITE_TEST_INT", 1))

	t.Setenv("PEROVSKITE_TEST_INT", "sixty-four")
	assert.Equal(t, 1, GetInt("PEROVSKITE_TEST_INT", 1))
}
