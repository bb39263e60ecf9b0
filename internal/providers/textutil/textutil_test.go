package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "New Node Creation", Title("new_node_creation"))
	assert.Equal(t, "Whiteboard", Title("whiteboard"))
	assert.Equal(t, "", Title(""))
}

func TestPascal(t *testing.T) {
	assert.Equal(t, "UserProfile", Pascal("user_profile"))
	assert.Equal(t, "UserProfile", Pascal("user-profile"))
	assert.Equal(t, "ApiKey", Pascal("api key"))
	assert.Equal(t, "T2fa", Pascal("2fa"))
	assert.Equal(t, "", Pascal("--"))
}

func TestBulletsDedupeHead(t *testing.T) {
	assert.Equal(t, "none", Bullets(nil, "none"))
	assert.Equal(t, "- a\n- b", Bullets([]string{"a", "b"}, "none"))
	assert.Equal(t, []string{"a", "b"}, Dedupe([]string{"a", "b", "a"}))
	assert.Equal(t, []string{"a"}, Head([]string{"a", "b"}, 1))
	assert.Equal(t, "ab", Truncate("abc", 2))
}
