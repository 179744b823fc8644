package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"
)

func TestHistoryContentsRoles(t *testing.T) {
	prompt := Prompt{
		User: "latest question",
		History: []Message{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
	}

	contents := historyContents(prompt)
	require.Len(t, contents, 3, "history turns plus the current user turn")

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)

	require.NotEmpty(t, contents[1].Parts)
	assert.Equal(t, "earlier answer", contents[1].Parts[0].Text)
	require.NotEmpty(t, contents[2].Parts)
	assert.Equal(t, "latest question", contents[2].Parts[0].Text)
}

func TestHistoryContentsUnknownRoleDefaultsToUser(t *testing.T) {
	contents := historyContents(Prompt{
		User:    "q",
		History: []Message{{Role: "system", Content: "x"}},
	})
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
}
