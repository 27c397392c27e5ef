package entities

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckStatus(t *testing.T) {
	s, err := NewCheckStatus(StatusAppointed, "")
	require.NoError(t, err)
	assert.Equal(t, StatusAppointed, s.Code)
	assert.False(t, s.Comment.Valid)

	s, err = NewCheckStatus(StatusRevision, "заменить огнетушитель")
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("заменить огнетушитель"), s.Comment)

	_, err = NewCheckStatus(StatusRevision, "")
	assert.ErrorIs(t, err, ErrRevisionCommentRequired)

	_, err = NewCheckStatus(StatusFulfilled, "лишний комментарий")
	assert.ErrorIs(t, err, ErrStatusCommentNotAllowed)

	_, err = NewCheckStatus("archived", "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestObjectCheckStatusCarriesCommentOnlyForRevision(t *testing.T) {
	check := ObjectCheck{Status: StatusChecking, Comments: null.StringFrom("старый комментарий")}
	assert.False(t, check.CheckStatus().Comment.Valid)

	check.Status = StatusRevision
	assert.Equal(t, "старый комментарий", check.CheckStatus().Comment.String)
}

func TestObjectCheckPatch(t *testing.T) {
	assert.True(t, ObjectCheckPatch{}.IsEmpty())

	templateID := int64(3)
	unassign := null.Int64{}
	patch := ObjectCheckPatch{TemplateID: &templateID, InspectorID: &unassign}
	require.False(t, patch.IsEmpty())

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	values := patch.Values(now)
	assert.Equal(t, map[string]interface{}{
		"template_id":  int64(3),
		"inspector_id": null.Int64{},
		"updated_at":   now,
	}, values)
}
